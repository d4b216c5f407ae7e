package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/questionbank/internal/dto"
	"github.com/lshigami/questionbank/internal/service"
)

// GetRubricIndexHandler godoc
// @Summary List rubric ids
// @Tags rubric
// @Produce json
// @Success 200 {array} int
// @Failure 500 {object} dto.ErrorResponse
// @Router /rubric [get]
func (ctrl *Controller) GetRubricIndexHandler(c *gin.Context) {
	ids, err := ctrl.rubricSvc.GetRubricIDs(c.Request.Context())
	if err != nil {
		respondError(c, err, service.EntityRubric, notFoundOnGet)
		return
	}
	c.JSON(http.StatusOK, ids)
}

// GetRubricHandler godoc
// @Summary Get a rubric
// @Tags rubric
// @Produce json
// @Param id path int true "Rubric ID"
// @Success 200 {object} dto.RubricResponse
// @Failure 404 {string} string "Rubric {id} not found"
// @Router /rubric/{id} [get]
func (ctrl *Controller) GetRubricHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, service.EntityRubric, notFoundOnGet)
		return
	}
	resp, err := ctrl.rubricSvc.GetRubric(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.EntityRubric, notFoundOnGet)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateRubricHandler godoc
// @Summary Create a rubric
// @Tags rubric
// @Accept json
// @Produce json
// @Param rubric body dto.RubricRequest true "Rubric fields"
// @Success 201 {object} dto.RubricResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /rubric [post]
func (ctrl *Controller) CreateRubricHandler(c *gin.Context) {
	var req dto.RubricRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.rubricSvc.CreateRubric(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, service.EntityRubric, notFoundOnGet)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateRubricHandler godoc
// @Summary Replace a rubric
// @Tags rubric
// @Accept json
// @Produce json
// @Param id path int true "Rubric ID"
// @Param rubric body dto.RubricRequest true "Rubric fields"
// @Success 200 {object} dto.RubricResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {string} string "Rubric {id} to update not found"
// @Router /rubric/{id} [put]
func (ctrl *Controller) UpdateRubricHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, service.EntityRubric, notFoundOnUpdate)
		return
	}
	if _, err := ctrl.rubricSvc.GetRubric(c.Request.Context(), id); err != nil {
		respondError(c, err, service.EntityRubric, notFoundOnUpdate)
		return
	}
	var req dto.RubricRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.rubricSvc.UpdateRubric(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, service.EntityRubric, notFoundOnUpdate)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteRubricHandler godoc
// @Summary Delete a rubric
// @Tags rubric
// @Produce json
// @Param id path int true "Rubric ID"
// @Success 200 {boolean} bool
// @Failure 404 {string} string "Rubric {id} to delete does not exist"
// @Router /rubric/{id} [delete]
func (ctrl *Controller) DeleteRubricHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, service.EntityRubric, notFoundOnDelete)
		return
	}
	if err := ctrl.rubricSvc.DeleteRubric(c.Request.Context(), id); err != nil {
		respondError(c, err, service.EntityRubric, notFoundOnDelete)
		return
	}
	c.JSON(http.StatusOK, true)
}
