package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/questionbank/internal/dto"
	"github.com/lshigami/questionbank/internal/service"
)

// GetMCOptionIndexHandler godoc
// @Summary List multiple choice option ids
// @Tags mc_option
// @Produce json
// @Success 200 {array} int
// @Failure 500 {object} dto.ErrorResponse
// @Router /mc_option [get]
func (ctrl *Controller) GetMCOptionIndexHandler(c *gin.Context) {
	ids, err := ctrl.optionSvc.GetMCOptionIDs(c.Request.Context())
	if err != nil {
		respondError(c, err, service.EntityMCOption, notFoundOnGet)
		return
	}
	c.JSON(http.StatusOK, ids)
}

// GetMCOptionHandler godoc
// @Summary Get a multiple choice option
// @Tags mc_option
// @Produce json
// @Param id path int true "Option ID"
// @Success 200 {object} dto.MCOptionResponse
// @Failure 404 {string} string "Multiple choice option {id} not found"
// @Router /mc_option/{id} [get]
func (ctrl *Controller) GetMCOptionHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, service.EntityMCOption, notFoundOnGet)
		return
	}
	resp, err := ctrl.optionSvc.GetMCOption(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.EntityMCOption, notFoundOnGet)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateMCOptionHandler godoc
// @Summary Create a multiple choice option
// @Tags mc_option
// @Accept json
// @Produce json
// @Param option body dto.MCOptionRequest true "Option fields"
// @Success 201 {object} dto.MCOptionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /mc_option [post]
func (ctrl *Controller) CreateMCOptionHandler(c *gin.Context) {
	var req dto.MCOptionRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.optionSvc.CreateMCOption(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, service.EntityMCOption, notFoundOnGet)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateMCOptionHandler godoc
// @Summary Replace a multiple choice option
// @Tags mc_option
// @Accept json
// @Produce json
// @Param id path int true "Option ID"
// @Param option body dto.MCOptionRequest true "Option fields"
// @Success 200 {object} dto.MCOptionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {string} string "Multiple choice option {id} to update not found"
// @Router /mc_option/{id} [put]
func (ctrl *Controller) UpdateMCOptionHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, service.EntityMCOption, notFoundOnUpdate)
		return
	}
	if _, err := ctrl.optionSvc.GetMCOption(c.Request.Context(), id); err != nil {
		respondError(c, err, service.EntityMCOption, notFoundOnUpdate)
		return
	}
	var req dto.MCOptionRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.optionSvc.UpdateMCOption(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, service.EntityMCOption, notFoundOnUpdate)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteMCOptionHandler godoc
// @Summary Delete a multiple choice option
// @Tags mc_option
// @Produce json
// @Param id path int true "Option ID"
// @Success 200 {boolean} bool
// @Failure 404 {string} string "Multiple choice option {id} to delete does not exist"
// @Router /mc_option/{id} [delete]
func (ctrl *Controller) DeleteMCOptionHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, service.EntityMCOption, notFoundOnDelete)
		return
	}
	if err := ctrl.optionSvc.DeleteMCOption(c.Request.Context(), id); err != nil {
		respondError(c, err, service.EntityMCOption, notFoundOnDelete)
		return
	}
	c.JSON(http.StatusOK, true)
}
