package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/config"
	"github.com/teamboard/backend/internal/database"
	"github.com/teamboard/backend/internal/handlers"
	"github.com/teamboard/backend/internal/middleware"
)

type Server struct {
	db       database.Service
	handler  *handlers.Handler
	verifier middleware.TokenVerifier
	logger   *zap.SugaredLogger
}

func New(db database.Service, handler *handlers.Handler, verifier middleware.TokenVerifier, logger *zap.SugaredLogger) *Server {
	return &Server{db: db, handler: handler, verifier: verifier, logger: logger}
}

// HTTPServer wraps the router in an http.Server listening on the configured
// port.
func (s *Server) HTTPServer(app config.App) *http.Server {
	if !app.IsDevEnvironment() {
		gin.SetMode(gin.ReleaseMode)
	}

	return &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(s.logger))

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		stats := s.db.Health()
		status := http.StatusOK
		if stats["status"] != "up" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, stats)
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", s.handler.Auth.Register)
		api.POST("/login", s.handler.Auth.Login)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(s.verifier))
		{
			protected.GET("/me", s.handler.Auth.GetMe)

			// User routes
			protected.GET("/users/:id", s.handler.User.GetUserProfile)
			protected.PATCH("/users/update", s.handler.User.UpdateProfile)
			protected.PATCH("/users/update/password", s.handler.User.UpdatePassword)

			// Project routes
			protected.POST("/projects", s.handler.Project.CreateProject)
			protected.POST("/projects/join", s.handler.Project.JoinProject)
			protected.GET("/projects/:id", s.handler.Project.GetProject)

			// Post routes
			protected.GET("/projects/:id/posts", s.handler.Post.GetPosts)
			protected.POST("/projects/:id/posts", s.handler.Post.CreatePost)
			protected.GET("/posts/:id", s.handler.Post.GetPost)
			protected.PUT("/posts/:id", s.handler.Post.UpdatePost)
			protected.DELETE("/posts/:id", s.handler.Post.DeletePost)

			// Vote routes
			protected.POST("/votes", s.handler.Vote.CreateVote)
			protected.GET("/votes/:id", s.handler.Vote.GetVote)
			protected.POST("/votes/options/:optionId/cast", s.handler.Vote.Cast)
			protected.PUT("/votes/options/:optionId/cast", s.handler.Vote.Recast)

			// Time poll routes
			protected.POST("/time-polls", s.handler.Poll.CreatePoll)
			protected.GET("/projects/:id/time-polls", s.handler.Poll.ListPolls)
			protected.GET("/time-polls/:id", s.handler.Poll.GetPoll)
			protected.POST("/time-polls/:id/submit", s.handler.Poll.SubmitAvailability)
		}
	}

	return r
}
