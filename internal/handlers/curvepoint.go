package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/service"
	"go.uber.org/zap"
)

// CurvePointHandler handles curve point HTTP requests.
type CurvePointHandler struct {
	service service.CurvePointService
	log     *zap.Logger
}

// NewCurvePointHandler creates a new CurvePointHandler instance.
func NewCurvePointHandler(svc service.CurvePointService, log *zap.Logger) *CurvePointHandler {
	return &CurvePointHandler{service: svc, log: log}
}

// GetAll godoc
// @Summary List all curve points
// @Tags curve
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.CurvePointDTO
// @Failure 500 {object} map[string]string
// @Router /curve [get]
func (h *CurvePointHandler) GetAll(c *gin.Context) {
	points, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetByID godoc
// @Summary Get a curve point by id
// @Tags curve
// @Security BearerAuth
// @Produce json
// @Param id path int true "CurvePoint ID"
// @Success 200 {object} dto.CurvePointDTO
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /curve/{id} [get]
func (h *CurvePointHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	point, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	if point == nil {
		RespondError(c, http.StatusNotFound, fmt.Sprintf("CurvePoint with ID %d not found.", id))
		return
	}
	c.JSON(http.StatusOK, point)
}

// Create godoc
// @Summary Create a curve point
// @Tags curve
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CurvePointDTO true "CurvePoint to create"
// @Success 201 {object} dto.CurvePointDTO
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /curve [post]
func (h *CurvePointHandler) Create(c *gin.Context) {
	var d dto.CurvePointDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), d)
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	c.Header("Location", fmt.Sprintf("/curve/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a curve point
// @Tags curve
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "CurvePoint ID"
// @Param request body dto.CurvePointDTO true "CurvePoint with updated values"
// @Success 200 {object} dto.CurvePointDTO
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /curve/{id} [put]
func (h *CurvePointHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var d dto.CurvePointDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, d)
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	if updated == nil {
		RespondError(c, http.StatusNotFound, fmt.Sprintf("CurvePoint with ID %d not found.", id))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a curve point
// @Tags curve
// @Security BearerAuth
// @Param id path int true "CurvePoint ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /curve/{id} [delete]
func (h *CurvePointHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	removed, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	if removed == nil {
		RespondError(c, http.StatusNotFound, fmt.Sprintf("CurvePoint with ID %d not found.", id))
		return
	}
	c.Status(http.StatusNoContent)
}
