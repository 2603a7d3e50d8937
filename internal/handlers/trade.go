package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/service"
	"go.uber.org/zap"
)

// TradeHandler handles trade HTTP requests.
type TradeHandler struct {
	service service.TradeService
	log     *zap.Logger
}

// NewTradeHandler creates a new TradeHandler instance.
func NewTradeHandler(svc service.TradeService, log *zap.Logger) *TradeHandler {
	return &TradeHandler{service: svc, log: log}
}

// GetAll godoc
// @Summary List all trades
// @Tags trade
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.TradeDTO
// @Failure 500 {object} map[string]string
// @Router /trade [get]
func (h *TradeHandler) GetAll(c *gin.Context) {
	trades, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	c.JSON(http.StatusOK, trades)
}

// GetByID godoc
// @Summary Get a trade by id
// @Tags trade
// @Security BearerAuth
// @Produce json
// @Param id path int true "Trade ID"
// @Success 200 {object} dto.TradeDTO
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /trade/{id} [get]
func (h *TradeHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trade, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	if trade == nil {
		RespondError(c, http.StatusNotFound, fmt.Sprintf("Trade with ID %d not found.", id))
		return
	}
	c.JSON(http.StatusOK, trade)
}

// Create godoc
// @Summary Create a trade
// @Tags trade
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TradeDTO true "Trade to create"
// @Success 201 {object} dto.TradeDTO
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /trade [post]
func (h *TradeHandler) Create(c *gin.Context) {
	var d dto.TradeDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), d)
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	c.Header("Location", fmt.Sprintf("/trade/%d", created.TradeID))
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a trade
// @Tags trade
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Trade ID"
// @Param request body dto.TradeDTO true "Trade with updated values"
// @Success 200 {object} dto.TradeDTO
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /trade/{id} [put]
func (h *TradeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var d dto.TradeDTO
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
		RespondError(c, http.StatusNotFound, fmt.Sprintf("Trade with ID %d not found.", id))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a trade
// @Tags trade
// @Security BearerAuth
// @Param id path int true "Trade ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /trade/{id} [delete]
func (h *TradeHandler) Delete(c *gin.Context) {
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
		RespondError(c, http.StatusNotFound, fmt.Sprintf("Trade with ID %d not found.", id))
		return
	}
	c.Status(http.StatusNoContent)
}
