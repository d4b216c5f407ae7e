package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/questionbank/internal/dto"
	"github.com/lshigami/questionbank/internal/service"
)

// GetSetupIndexHandler godoc
// @Summary List setup ids
// @Tags setup
// @Produce json
// @Success 200 {array} int
// @Failure 500 {object} dto.ErrorResponse
// @Router /setup [get]
func (ctrl *Controller) GetSetupIndexHandler(c *gin.Context) {
	ids, err := ctrl.setupSvc.GetSetupIDs(c.Request.Context())
	if err != nil {
		respondError(c, err, service.EntitySetup, notFoundOnGet)
		return
	}
	c.JSON(http.StatusOK, ids)
}

// GetSetupHandler godoc
// @Summary Get a setup
// @Tags setup
// @Produce json
// @Param id path int true "Setup ID"
// @Success 200 {object} dto.SetupResponse
// @Failure 404 {string} string "Setup {id} not found"
// @Router /setup/{id} [get]
func (ctrl *Controller) GetSetupHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, service.EntitySetup, notFoundOnGet)
		return
	}
	resp, err := ctrl.setupSvc.GetSetup(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.EntitySetup, notFoundOnGet)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateSetupHandler godoc
// @Summary Create a setup
// @Tags setup
// @Accept json
// @Produce json
// @Param setup body dto.SetupRequest true "Setup text"
// @Success 201 {object} dto.SetupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /setup [post]
func (ctrl *Controller) CreateSetupHandler(c *gin.Context) {
	var req dto.SetupRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.setupSvc.CreateSetup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, service.EntitySetup, notFoundOnGet)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateSetupHandler godoc
// @Summary Replace a setup
// @Tags setup
// @Accept json
// @Produce json
// @Param id path int true "Setup ID"
// @Param setup body dto.SetupRequest true "Setup text"
// @Success 200 {object} dto.SetupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {string} string "Setup {id} to update not found"
// @Router /setup/{id} [put]
func (ctrl *Controller) UpdateSetupHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, service.EntitySetup, notFoundOnUpdate)
		return
	}
	// A missing row wins over a malformed body.
	if _, err := ctrl.setupSvc.GetSetup(c.Request.Context(), id); err != nil {
		respondError(c, err, service.EntitySetup, notFoundOnUpdate)
		return
	}
	var req dto.SetupRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.setupSvc.UpdateSetup(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, service.EntitySetup, notFoundOnUpdate)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteSetupHandler godoc
// @Summary Delete a setup
// @Description Questions that reference the setup are left untouched
// @Tags setup
// @Produce json
// @Param id path int true "Setup ID"
// @Success 200 {boolean} bool
// @Failure 404 {string} string "Setup {id} to delete does not exist"
// @Router /setup/{id} [delete]
func (ctrl *Controller) DeleteSetupHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, service.EntitySetup, notFoundOnDelete)
		return
	}
	if err := ctrl.setupSvc.DeleteSetup(c.Request.Context(), id); err != nil {
		respondError(c, err, service.EntitySetup, notFoundOnDelete)
		return
	}
	c.JSON(http.StatusOK, true)
}
