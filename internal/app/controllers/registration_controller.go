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

// RegistrationController handles student registrations
type RegistrationController struct {
	registrationService services.RegistrationService
	metrics             *metrics.Metrics
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService services.RegistrationService, m *metrics.Metrics) *RegistrationController {
	return &RegistrationController{registrationService: registrationService, metrics: m}
}

// Submit stores a registration
// @Summary Submit a student registration
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body models.StudentRegistrationInput true "Registration"
// @Success 200 {object} dto.RegistrationResponse "Registration submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /registrations [post]
func (c *RegistrationController) Submit(ctx *gin.Context) {
	var in models.StudentRegistrationInput
	if err := middleware.BindJSON(ctx, &in); err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}

	reg, err := c.registrationService.Submit(ctx.Request.Context(), &in)
	if err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}
	c.metrics.RecordSubmission(metrics.SubmissionRegistration)

	ctx.JSON(http.StatusOK, dto.RegistrationResponse{
		Success:      true,
		Message:      "Registration submitted successfully",
		Registration: reg,
	})
}

// List returns every registration, newest first
// @Summary List student registrations
// @Tags registrations
// @Produce json
// @Success 200 {array} models.StudentRegistration
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch registrations"
// @Security SessionCookie
// @Router /registrations [get]
func (c *RegistrationController) List(ctx *gin.Context) {
	regs, err := c.registrationService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch registrations")
		return
	}
	ctx.JSON(http.StatusOK, regs)
}

// Get returns one registration
// @Summary Get a student registration
// @Tags registrations
// @Produce json
// @Param id path string true "Registration ID"
// @Success 200 {object} models.StudentRegistration
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch registrations"
// @Security SessionCookie
// @Router /registrations/{id} [get]
func (c *RegistrationController) Get(ctx *gin.Context) {
	reg, err := c.registrationService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch registrations")
		return
	}
	ctx.JSON(http.StatusOK, reg)
}

// UpdateStatus records a review decision
// @Summary Update registration status
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Registration ID"
// @Param request body models.RegistrationStatusInput true "pending, reviewed, accepted or rejected, with optional notes"
// @Success 200 {object} dto.MessageResponse "Registration status updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Registration not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update registration status"
// @Security SessionCookie
// @Router /registrations/{id}/status [put]
func (c *RegistrationController) UpdateStatus(ctx *gin.Context) {
	var in models.RegistrationStatusInput
	if err := middleware.BindJSON(ctx, &in); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update registration status")
		return
	}

	if err := c.registrationService.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), &in); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update registration status")
		return
	}
	ctx.JSON(http.StatusOK, dto.Success("Registration status updated successfully"))
}
