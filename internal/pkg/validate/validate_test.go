package validate

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sampleForm struct {
	Title      string `validate:"required,max=200"`
	CategoryID uint   `validate:"required"`
	Status     string `validate:"omitempty,oneof=draft published"`
}

func TestFieldsFromValidator(t *testing.T) {
	v := validator.New()
	err := v.Struct(sampleForm{Status: "archived"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	fields := Fields(err)
	if fields["title"] != "this field is required" {
		t.Errorf("title message = %q", fields["title"])
	}
	if fields["category_id"] == "" {
		t.Error("expected category_id error")
	}
	if fields["status"] == "" {
		t.Error("expected status oneof error")
	}
}

func TestFieldsFallback(t *testing.T) {
	fields := Fields(errors.New("unexpected EOF"))
	if fields["__all__"] != "unexpected EOF" {
		t.Errorf("fallback = %q", fields["__all__"])
	}
}

func TestConflict(t *testing.T) {
	fields := Conflict("name", "Tech")
	if fields["name"] == "" {
		t.Error("expected name conflict message")
	}
}
