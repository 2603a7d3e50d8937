package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poseidon-markets/refdata-service/internal/dto"
	"github.com/poseidon-markets/refdata-service/internal/service"
	"go.uber.org/zap"
)

// RuleNameHandler handles rule definition HTTP requests.
type RuleNameHandler struct {
	service service.RuleNameService
	log     *zap.Logger
}

// NewRuleNameHandler creates a new RuleNameHandler instance.
func NewRuleNameHandler(svc service.RuleNameService, log *zap.Logger) *RuleNameHandler {
	return &RuleNameHandler{service: svc, log: log}
}

// GetAll godoc
// @Summary List all rule names
// @Tags rulename
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.RuleNameDTO
// @Failure 500 {object} map[string]string
// @Router /rulename [get]
func (h *RuleNameHandler) GetAll(c *gin.Context) {
	rules, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// GetByID godoc
// @Summary Get a rule name by id
// @Tags rulename
// @Security BearerAuth
// @Produce json
// @Param id path int true "RuleName ID"
// @Success 200 {object} dto.RuleNameDTO
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rulename/{id} [get]
func (h *RuleNameHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	rule, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	if rule == nil {
		RespondError(c, http.StatusNotFound, fmt.Sprintf("RuleName with ID %d not found.", id))
		return
	}
	c.JSON(http.StatusOK, rule)
}

// Create godoc
// @Summary Create a rule name
// @Tags rulename
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RuleNameDTO true "RuleName to create"
// @Success 201 {object} dto.RuleNameDTO
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rulename [post]
func (h *RuleNameHandler) Create(c *gin.Context) {
	var d dto.RuleNameDTO
	if err := c.ShouldBindJSON(&d); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), d)
	if err != nil {
		LogAndRespondError(c, h.log, http.StatusInternalServerError, err, internalErrorMessage)
		return
	}
	c.Header("Location", fmt.Sprintf("/rulename/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a rule name
// @Tags rulename
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "RuleName ID"
// @Param request body dto.RuleNameDTO true "RuleName with updated values"
// @Success 200 {object} dto.RuleNameDTO
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rulename/{id} [put]
func (h *RuleNameHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var d dto.RuleNameDTO
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
		RespondError(c, http.StatusNotFound, fmt.Sprintf("RuleName with ID %d not found.", id))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a rule name
// @Tags rulename
// @Security BearerAuth
// @Param id path int true "RuleName ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /rulename/{id} [delete]
func (h *RuleNameHandler) Delete(c *gin.Context) {
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
		RespondError(c, http.StatusNotFound, fmt.Sprintf("RuleName with ID %d not found.", id))
		return
	}
	c.Status(http.StatusNoContent)
}
