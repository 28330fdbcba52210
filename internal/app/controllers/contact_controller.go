package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/models/dto"
	"github.com/yigit/madrasah/internal/app/services"
	"github.com/yigit/madrasah/internal/middleware"
	"github.com/yigit/madrasah/internal/pkg/metrics"
)

// ContactController handles the contact form and its inbox
type ContactController struct {
	contactService services.ContactService
	metrics        *metrics.Metrics
}

// NewContactController creates a new ContactController
func NewContactController(contactService services.ContactService, m *metrics.Metrics) *ContactController {
	return &ContactController{contactService: contactService, metrics: m}
}

// Submit stores a contact form message
// @Summary Send a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body models.ContactMessageInput true "Message"
// @Success 200 {object} dto.IDResponse "Message sent successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /contact [post]
func (c *ContactController) Submit(ctx *gin.Context) {
	var in models.ContactMessageInput
	if err := middleware.BindJSON(ctx, &in); err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}

	msg, err := c.contactService.Submit(ctx.Request.Context(), &in)
	if err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}
	c.metrics.RecordSubmission(metrics.SubmissionContact)

	ctx.JSON(http.StatusOK, dto.IDResponse{Success: true, Message: "Message sent successfully", ID: msg.ID})
}

// List returns every contact message, newest first
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Success 200 {array} models.ContactMessage
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch messages"
// @Security SessionCookie
// @Router /contact-messages [get]
func (c *ContactController) List(ctx *gin.Context) {
	messages, err := c.contactService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch messages")
		return
	}
	ctx.JSON(http.StatusOK, messages)
}

// UpdateStatus moves a message through the inbox workflow
// @Summary Update contact message status
// @Tags contact
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body models.ContactStatusInput true "unread, read, replied or archived"
// @Success 200 {object} dto.MessageResponse "Status updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update message status"
// @Security SessionCookie
// @Router /contact-messages/{id}/status [put]
func (c *ContactController) UpdateStatus(ctx *gin.Context) {
	var in models.ContactStatusInput
	if err := middleware.BindJSON(ctx, &in); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update message status")
		return
	}

	if err := c.contactService.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), &in); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update message status")
		return
	}
	ctx.JSON(http.StatusOK, dto.Success("Status updated successfully"))
}
