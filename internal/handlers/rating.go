package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/service"
	"go.uber.org/zap"
)

// RatingHandler handles credit rating HTTP requests.
type RatingHandler struct {
	service service.RatingService
	log     *zap.Logger
}

// NewRatingHandler creates a new RatingHandler instance.
func NewRatingHandler(svc service.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{service: svc, log: log}
}

// GetAll godoc
// @Summary List all ratings
// @Tags rating
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.RatingDTO
// @Failure 500 {object} map[string]string
// @Router /rating [get]
func (h *RatingHandler) GetAll(c *gin.Context) {
	ratings, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// GetByID godoc
// @Summary Get a rating by id
// @Tags rating
// @Security BearerAuth
// @Produce json
// @Param id path int true "Rating ID"
// @Success 200 {object} dto.RatingDTO
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rating/{id} [get]
func (h *RatingHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rating, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	if rating == nil {
		RespondError(c, http.StatusNotFound, fmt.Sprintf("Rating with ID %d not found.", id))
		return
	}
	c.JSON(http.StatusOK, rating)
}

// Create godoc
// @Summary Create a rating
// @Tags rating
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RatingDTO true "Rating to create"
// @Success 201 {object} dto.RatingDTO
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rating [post]
func (h *RatingHandler) Create(c *gin.Context) {
	var d dto.RatingDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), d)
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	c.Header("Location", fmt.Sprintf("/rating/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a rating
// @Tags rating
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Rating ID"
// @Param request body dto.RatingDTO true "Rating with updated values"
// @Success 200 {object} dto.RatingDTO
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rating/{id} [put]
func (h *RatingHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var d dto.RatingDTO
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
		RespondError(c, http.StatusNotFound, fmt.Sprintf("Rating with ID %d not found.", id))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a rating
// @Tags rating
// @Security BearerAuth
// @Param id path int true "Rating ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rating/{id} [delete]
func (h *RatingHandler) Delete(c *gin.Context) {
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
		RespondError(c, http.StatusNotFound, fmt.Sprintf("Rating with ID %d not found.", id))
		return
	}
	c.Status(http.StatusNoContent)
}
