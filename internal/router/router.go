package router

import (
	"net/http"
	"yatube/internal/handlers"
	"yatube/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	followHandler := handlers.NewFollowHandler()

	// Public routes
	r.GET("/", middleware.CachePage(middleware.IndexCacheTTL), postHandler.Index)
	r.GET("/group/:slug/", postHandler.GroupPosts)
	r.GET("/profile/:username/", postHandler.Profile)
	r.GET("/posts/:post_id/", postHandler.Detail)

	r.GET("/auth/signup/", authHandler.ShowSignup)
	r.POST("/auth/signup/", authHandler.Signup)
	r.GET("/auth/login/", authHandler.ShowLogin)
	r.POST("/auth/login/", authHandler.Login)
	r.GET("/auth/logout/", authHandler.Logout)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/create/", postHandler.ShowCreate)
		authorized.POST("/create/", postHandler.Create)
		authorized.GET("/posts/:post_id/edit/", postHandler.ShowEdit)
		authorized.POST("/posts/:post_id/edit/", postHandler.Update)
		authorized.POST("/posts/:post_id/comment/", postHandler.AddComment)

		authorized.GET("/follow/", followHandler.FollowIndex)
		authorized.GET("/profile/:username/follow/", followHandler.Follow)
		authorized.GET("/profile/:username/unfollow/", followHandler.Unfollow)
	}

	r.NoRoute(func(c *gin.Context) {
		handlers.RenderError(c, http.StatusNotFound, "Page not found")
	})
}
