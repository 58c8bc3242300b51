package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookreview-backend/internal/shared/middleware"
	"bookreview-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAccountRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupBookRoutes(v1, c)
		setupReviewRoutes(v1, c)
	}

	return router
}

// ========================================
// ACCOUNT ROUTES
// ========================================
func setupAccountRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/register", c.UserHandler.Register)
	v1.POST("/login", c.UserHandler.Login)
	v1.POST("/token/refresh", c.UserHandler.RefreshToken)
	v1.POST("/token/verify", c.UserHandler.VerifyToken)

	auth := v1.Group("")
	auth.Use(middleware.AuthMiddleware(c.Tokens))
	{
		auth.PUT("/change-password/:username", c.UserHandler.ChangePassword)
		auth.PUT("/update-profile/:username", c.UserHandler.UpdateProfile)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	authors.Use(middleware.AuthMiddleware(c.Tokens))
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.Get)

		// Mutations are staff only
		admin := authors.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("", c.AuthorHandler.Create)
			admin.PUT("/:id", c.AuthorHandler.Update)
			admin.DELETE("/:id", c.AuthorHandler.Delete)
		}
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	books.Use(middleware.AuthMiddleware(c.Tokens))
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.Get)
		books.PUT("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)

		admin := books.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("", c.BookHandler.Create)
		}
	}
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(c.Tokens))
	{
		authed.POST("/book/:id/review", c.ReviewHandler.Create)
		authed.GET("/book/:id/all-reviews", c.ReviewHandler.ListByBook)

		authed.GET("/review/:id", c.ReviewHandler.Get)
		authed.PUT("/review/:id", c.ReviewHandler.Update)
		authed.DELETE("/review/:id", c.ReviewHandler.Delete)

		authed.GET("/user/reviews", c.ReviewHandler.ListMine)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
