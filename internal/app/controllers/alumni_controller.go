package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/madrasah/internal/app/models"
	"github.com/yigit/madrasah/internal/app/models/dto"
	"github.com/yigit/madrasah/internal/app/services"
	"github.com/yigit/madrasah/internal/middleware"
	"github.com/yigit/madrasah/internal/pkg/helpers"
	"github.com/yigit/madrasah/internal/pkg/metrics"
)

// AlumniController handles alumni profiles
type AlumniController struct {
	alumniService services.AlumniService
	metrics       *metrics.Metrics
}

// NewAlumniController creates a new AlumniController
func NewAlumniController(alumniService services.AlumniService, m *metrics.Metrics) *AlumniController {
	return &AlumniController{alumniService: alumniService, metrics: m}
}

// List returns profiles, latest class first
// @Summary List alumni
// @Tags alumni
// @Produce json
// @Param approved query bool false "Filter by approval"
// @Param featured query bool false "Filter by featuring"
// @Success 200 {array} models.Alumni
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch alumni"
// @Router /alumni [get]
func (c *AlumniController) List(ctx *gin.Context) {
	filter := models.AlumniFilter{
		Approved: helpers.BoolQuery(ctx, "approved"),
		Featured: helpers.BoolQuery(ctx, "featured"),
	}

	alumni, err := c.alumniService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch alumni")
		return
	}
	ctx.JSON(http.StatusOK, alumni)
}

// Get returns one profile
// @Summary Get an alumni profile
// @Tags alumni
// @Produce json
// @Param id path string true "Alumni ID"
// @Success 200 {object} models.Alumni
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to fetch alumni"
// @Router /alumni/{id} [get]
func (c *AlumniController) Get(ctx *gin.Context) {
	a, err := c.alumniService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to fetch alumni")
		return
	}
	ctx.JSON(http.StatusOK, a)
}

// Submit stores a profile for review
// @Summary Submit an alumni profile
// @Description Public submission. The profile stays hidden until approved.
// @Tags alumni
// @Accept json
// @Produce json
// @Param request body models.AlumniInput true "Profile"
// @Success 200 {object} dto.AlumniResponse "Alumni data submitted for review"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /alumni [post]
func (c *AlumniController) Submit(ctx *gin.Context) {
	var in models.AlumniInput
	if err := middleware.BindJSON(ctx, &in); err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}

	a, err := c.alumniService.Submit(ctx.Request.Context(), &in)
	if err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}
	c.metrics.RecordSubmission(metrics.SubmissionAlumni)

	ctx.JSON(http.StatusOK, dto.AlumniResponse{Success: true, Message: "Alumni data submitted for review", Alumni: a})
}

// Update changes the supplied fields of a profile
// @Summary Update an alumni profile
// @Tags alumni
// @Accept json
// @Produce json
// @Param id path string true "Alumni ID"
// @Param request body models.AlumniInput true "Fields to change"
// @Success 200 {object} dto.AlumniResponse "Alumni data updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security SessionCookie
// @Router /alumni/{id} [put]
func (c *AlumniController) Update(ctx *gin.Context) {
	var in models.AlumniInput
	if err := middleware.BindJSON(ctx, &in); err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}

	a, err := c.alumniService.Update(ctx.Request.Context(), ctx.Param("id"), &in)
	if err != nil {
		middleware.HandleAPIError(ctx, err, middleware.MsgInternalError)
		return
	}
	ctx.JSON(http.StatusOK, dto.AlumniResponse{Success: true, Message: "Alumni data updated successfully", Alumni: a})
}

// UpdateStatus approves or features a profile
// @Summary Update alumni status
// @Tags alumni
// @Accept json
// @Produce json
// @Param id path string true "Alumni ID"
// @Param request body models.AlumniStatusInput true "Approval and featuring"
// @Success 200 {object} dto.MessageResponse "Alumni status updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Alumni not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update alumni status"
// @Security SessionCookie
// @Router /alumni/{id}/status [put]
func (c *AlumniController) UpdateStatus(ctx *gin.Context) {
	var in models.AlumniStatusInput
	if err := middleware.BindJSON(ctx, &in); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update alumni status")
		return
	}

	if err := c.alumniService.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), &in); err != nil {
		middleware.HandleAPIError(ctx, err, "Failed to update alumni status")
		return
	}
	ctx.JSON(http.StatusOK, dto.Success("Alumni status updated successfully"))
}
