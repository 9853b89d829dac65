package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juustinnle/volunteer-hub/pkg/core/services"
)

func (s *Server) register(c *gin.Context) {
	var input services.RegisterInput
	if !bindJSON(c, &input) {
		return
	}

	if err := services.Register(s.store, s.logger, input); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user registered"})
}

func (s *Server) login(c *gin.Context) {
	var input services.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	if err := services.Login(s.store, s.logger, input); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "login successful"})
}

func (s *Server) getProfile(c *gin.Context) {
	profile, err := services.GetProfile(s.store, c.Param("email"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (s *Server) updateProfile(c *gin.Context) {
	var input services.ProfileInput
	if !bindJSON(c, &input) {
		return
	}

	if err := services.UpdateProfile(s.store, s.logger, c.Param("email"), input); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated"})
}

func (s *Server) createEvent(c *gin.Context) {
	var input services.CreateEventInput
	if !bindJSON(c, &input) {
		return
	}

	event, err := services.CreateEvent(s.store, s.dispatcher, s.logger, input)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (s *Server) listEvents(c *gin.Context) {
	c.JSON(http.StatusOK, services.ListEvents(s.store))
}

func (s *Server) deleteEvent(c *gin.Context) {
	if err := services.DeleteEvent(s.store, s.logger, c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

func (s *Server) createNotification(c *gin.Context) {
	var input services.CreateNotificationInput
	if !bindJSON(c, &input) {
		return
	}

	notification, err := services.CreateNotification(s.store, s.dispatcher, s.logger, input)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, notification)
}

func (s *Server) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, services.ListNotifications(s.store, c.Param("email")))
}

// deleteNotificationInput identifies a notification by its exact
// (email, message) pair
type deleteNotificationInput struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s *Server) deleteNotification(c *gin.Context) {
	var input deleteNotificationInput
	if !bindJSON(c, &input) {
		return
	}

	if err := services.DeleteNotification(s.store, s.logger, input.Email, input.Message); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification deleted"})
}

func (s *Server) matchingEvents(c *gin.Context) {
	events, err := services.MatchingEvents(s.store, s.logger, c.Param("email"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (s *Server) matchVolunteer(c *gin.Context) {
	var input services.MatchVolunteerInput
	if !bindJSON(c, &input) {
		return
	}

	if err := services.MatchVolunteer(s.store, s.dispatcher, s.logger, input); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "volunteer matched"})
}

func (s *Server) volunteerHistory(c *gin.Context) {
	history, err := services.VolunteerHistory(s.store, c.Param("email"))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
