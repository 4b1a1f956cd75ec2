package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/pkg/jwt"
)

func TestHasValidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := jwt.Sign(7, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	cases := []struct {
		name   string
		header string
		cookie string
		want   bool
	}{
		{"bearer header", "Bearer " + token, "", true},
		{"token cookie", "", token, true},
		{"garbage", "Bearer not-a-token", "", false},
		{"missing", "", "", false},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			c.Request.Header.Set("Authorization", tc.header)
		}
		if tc.cookie != "" {
			c.Request.AddCookie(&http.Cookie{Name: "token", Value: tc.cookie})
		}
		if got := hasValidToken(c); got != tc.want {
			t.Errorf("%s: hasValidToken = %v, want %v", tc.name, got, tc.want)
		}
	}
}
