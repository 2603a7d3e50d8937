package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/service"
	"go.uber.org/zap"
)

// BidListHandler handles bid list HTTP requests.
type BidListHandler struct {
	service service.BidListService
	log     *zap.Logger
}

// NewBidListHandler creates a new BidListHandler instance.
func NewBidListHandler(svc service.BidListService, log *zap.Logger) *BidListHandler {
	return &BidListHandler{service: svc, log: log}
}

// GetAll godoc
// @Summary List all bid lists
// @Tags bidlist
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.BidListDTO
// @Failure 500 {object} map[string]string
// @Router /bidlist [get]
func (h *BidListHandler) GetAll(c *gin.Context) {
	bidLists, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	c.JSON(http.StatusOK, bidLists)
}

// GetByID godoc
// @Summary Get a bid list by id
// @Tags bidlist
// @Security BearerAuth
// @Produce json
// @Param id path int true "BidList ID"
// @Success 200 {object} dto.BidListDTO
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bidlist/{id} [get]
func (h *BidListHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	bidList, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	if bidList == nil {
		RespondError(c, http.StatusNotFound, fmt.Sprintf("BidList with ID %d not found.", id))
		return
	}
	c.JSON(http.StatusOK, bidList)
}

// Create godoc
// @Summary Create a bid list
// @Tags bidlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BidListDTO true "BidList to create"
// @Success 201 {object} dto.BidListDTO
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bidlist [post]
func (h *BidListHandler) Create(c *gin.Context) {
	var d dto.BidListDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), d)
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	c.Header("Location", fmt.Sprintf("/bidlist/%d", created.BidListID))
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a bid list
// @Tags bidlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "BidList ID"
// @Param request body dto.BidListDTO true "BidList with updated values"
// @Success 200 {object} dto.BidListDTO
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bidlist/{id} [put]
func (h *BidListHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var d dto.BidListDTO
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
		RespondError(c, http.StatusNotFound, fmt.Sprintf("BidList with ID %d not found.", id))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a bid list
// @Tags bidlist
// @Security BearerAuth
// @Param id path int true "BidList ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bidlist/{id} [delete]
func (h *BidListHandler) Delete(c *gin.Context) {
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
		RespondError(c, http.StatusNotFound, fmt.Sprintf("BidList with ID %d not found.", id))
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID reads the numeric id route parameter, responding 400 itself
// when the value is not an integer.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "id must be a valid integer")
		return 0, false
	}
	return id, true
}
