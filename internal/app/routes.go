package app

import (
	"github.com/gin-gonic/gin"
	"github.com/inkpress/core/internal/middleware"
	"github.com/inkpress/core/internal/modules/auth"
	"github.com/inkpress/core/internal/modules/dashboard"
	"github.com/inkpress/core/internal/modules/dashboard/category"
	"github.com/inkpress/core/internal/modules/dashboard/comment"
	"github.com/inkpress/core/internal/modules/dashboard/post"
	"github.com/inkpress/core/internal/modules/dashboard/sociallink"
	"github.com/inkpress/core/internal/modules/dashboard/user"
	"github.com/inkpress/core/internal/modules/storage"
	"github.com/inkpress/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db

	r.NoRoute(func(c *gin.Context) { response.NotFound(c) })
	r.NoMethod(func(c *gin.Context) { response.MethodNotAllowed(c) })

	if a.rc != nil {
		r.Use(middleware.RateLimit(a.rc.Raw()))
	}

	// Uploaded featured images are served straight from the static dir.
	r.Static("/static", a.cfg.Static)

	api := r.Group("/api/v1")
	api.GET("/ping", func(c *gin.Context) { c.JSON(200, gin.H{"data": "pong"}) })

	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api)

	// Everything under /dashboard requires a logged-in user, the user
	// management routes included.
	dash := api.Group("/dashboard", middleware.Auth())
	dashboard.RegisterRoutes(dash, db)

	store := storage.NewService(a.cfg.Static)
	category.NewHandler(category.NewService(db), store).RegisterRoutes(dash)
	post.NewHandler(post.NewService(db), store).RegisterRoutes(dash)
	user.NewHandler(user.NewService(db), store).RegisterRoutes(dash)
	sociallink.NewHandler(sociallink.NewService(db)).RegisterRoutes(dash)
	comment.NewHandler(comment.NewService(db)).RegisterRoutes(dash)
}
