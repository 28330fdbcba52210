package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/models/dto"
	"github.com/yigit/madrasah/internal/app/services"
	"github.com/yigit/madrasah/internal/middleware"
	"github.com/yigit/madrasah/internal/pkg/helpers"
)

// EventController handles the academic calendar
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// List returns events, soonest first
// @Summary List academic events
// @Tags events
// @Produce json
// @Param public query bool false "Filter by visibility"
// @Success 200 {array} models.AcademicEvent
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch academic calendar"
// @Router /events [get]
func (c *EventController) List(ctx *gin.Context) {
	filter := models.EventFilter{IsPublic: helpers.BoolQuery(ctx, "public")}

	events, err := c.eventService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch academic calendar")
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// Get returns one event
// @Summary Get an academic event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.AcademicEvent
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch event"
// @Router /events/{id} [get]
func (c *EventController) Get(ctx *gin.Context) {
	e, err := c.eventService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch event")
		return
	}
	ctx.JSON(http.StatusOK, e)
}

// Create adds an event
// @Summary Create an academic event
// @Tags events
// @Accept json
// @Produce json
// @Param request body models.AcademicEventInput true "Event"
// @Success 200 {object} dto.EventResponse "Event created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security SessionCookie
// @Router /events [post]
func (c *EventController) Create(ctx *gin.Context) {
	var in models.AcademicEventInput
	if err := middleware.BindJSON(ctx, &in); err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}

	e, err := c.eventService.Create(ctx.Request.Context(), &in)
	if err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}
	ctx.JSON(http.StatusOK, dto.EventResponse{Success: true, Message: "Event created successfully", Event: e})
}

// Update changes the supplied fields of an event
// @Summary Update an academic event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body models.AcademicEventInput true "Fields to change"
// @Success 200 {object} dto.EventResponse "Event updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security SessionCookie
// @Router /events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	var in models.AcademicEventInput
	if err := middleware.BindJSON(ctx, &in); err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}

	e, err := c.eventService.Update(ctx.Request.Context(), ctx.Param("id"), &in)
	if err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}
	ctx.JSON(http.StatusOK, dto.EventResponse{Success: true, Message: "Event updated successfully", Event: e})
}

// Delete removes an event
// @Summary Delete an academic event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.MessageResponse "Event deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete event"
// @Security SessionCookie
// @Router /events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	if err := c.eventService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to delete event")
		return
	}
	ctx.JSON(http.StatusOK, dto.Success("Event deleted successfully"))
}
