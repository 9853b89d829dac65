// Package api exposes the coordination operations as a JSON HTTP API.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/juustinnle/volunteer-hub/pkg/core/services"
	"github.com/juustinnle/volunteer-hub/pkg/store"
)

// Server holds the handler dependencies
type Server struct {
	store      *store.Store
	dispatcher *services.SyncDispatcher
	logger     *zap.Logger
}

// NewServer creates a server around the given store and dispatcher
func NewServer(s *store.Store, dispatcher *services.SyncDispatcher, logger *zap.Logger) *Server {
	return &Server{
		store:      s,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Router builds the gin engine with all routes registered
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.register)
			auth.POST("/login", s.login)
		}

		api.GET("/profile/:email", s.getProfile)
		api.PUT("/profile/:email", s.updateProfile)

		api.POST("/events", s.createEvent)
		api.GET("/events", s.listEvents)
		api.DELETE("/events/:id", s.deleteEvent)

		api.POST("/notifications", s.createNotification)
		api.GET("/notifications/:email", s.listNotifications)
		api.DELETE("/notifications", s.deleteNotification)

		api.GET("/matching-events/:email", s.matchingEvents)
		api.POST("/match", s.matchVolunteer)
		api.GET("/history/:email", s.volunteerHistory)
	}

	return router
}

// respondError maps domain errors onto HTTP status codes
func (s *Server) respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
	default:
		s.logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// bindJSON parses the request body, reporting malformed JSON as a 400
func bindJSON(c *gin.Context, target any) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}
