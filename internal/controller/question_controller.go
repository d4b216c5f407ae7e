package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/questionbank/internal/dto"
	"github.com/lshigami/questionbank/internal/service"
)

// GetQuestionIndexHandler godoc
// @Summary List question previews grouped by type
// @Description Each entry holds the id and the first 40 characters of the question text
// @Tags question
// @Produce json
// @Success 200 {object} dto.QuestionIndexResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /question [get]
func (ctrl *Controller) GetQuestionIndexHandler(c *gin.Context) {
	index, err := ctrl.questionSvc.GetQuestionIndex(c.Request.Context())
	if err != nil {
		respondError(c, err, service.EntityQuestion, notFoundOnGet)
		return
	}
	c.JSON(http.StatusOK, index)
}

// GetQuestionHandler godoc
// @Summary Get a question
// @Description mc questions carry true_options and false_options, sa questions carry answer and rubrics, sql questions carry setup and answer
// @Tags question
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.SQLQuestionResponse
// @Failure 404 {string} string "Question {id} not found"
// @Router /question/{id} [get]
func (ctrl *Controller) GetQuestionHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, service.EntityQuestion, notFoundOnGet)
		return
	}
	resp, err := ctrl.questionSvc.GetQuestion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, service.EntityQuestion, notFoundOnGet)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateQuestionHandler godoc
// @Summary Create a question
// @Description Options and rubrics are attached afterwards through /mc_option and /rubric
// @Tags question
// @Accept json
// @Produce json
// @Param question body dto.QuestionRequest true "Question fields"
// @Success 201 {object} dto.SQLQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Rule violated, see kind"
// @Router /question [post]
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	var req dto.QuestionRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.questionSvc.CreateQuestion(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, service.EntityQuestion, notFoundOnGet)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateQuestionHandler godoc
// @Summary Replace a question
// @Description The type must match the stored question
// @Tags question
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionRequest true "Question fields"
// @Success 200 {object} dto.SQLQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Rule violated, see kind"
// @Failure 404 {string} string "Question {id} to update not found"
// @Router /question/{id} [put]
func (ctrl *Controller) UpdateQuestionHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, service.EntityQuestion, notFoundOnUpdate)
		return
	}
	if _, err := ctrl.questionSvc.GetQuestion(c.Request.Context(), id); err != nil {
		respondError(c, err, service.EntityQuestion, notFoundOnUpdate)
		return
	}
	var req dto.QuestionRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := ctrl.questionSvc.UpdateQuestion(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, service.EntityQuestion, notFoundOnUpdate)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestionHandler godoc
// @Summary Delete a question
// @Description Also removes the options of an mc question or the rubrics of an sa question
// @Tags question
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {boolean} bool
// @Failure 404 {string} string "Question {id} to delete does not exist"
// @Router /question/{id} [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		notFound(c, service.EntityQuestion, notFoundOnDelete)
		return
	}
	if err := ctrl.questionSvc.DeleteQuestion(c.Request.Context(), id); err != nil {
		respondError(c, err, service.EntityQuestion, notFoundOnDelete)
		return
	}
	c.JSON(http.StatusOK, true)
}
