package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lshigami/questionbank/internal/dto"
	"github.com/lshigami/questionbank/internal/service"
	"github.com/rs/zerolog/log"
)

// Suffixes of the plain-text 404 bodies, one per operation.
const (
	notFoundOnGet    = "not found"
	notFoundOnUpdate = "to update not found"
	notFoundOnDelete = "to delete does not exist"
)

type Controller struct {
	setupSvc    service.SetupService
	optionSvc   service.MCOptionService
	rubricSvc   service.RubricService
	questionSvc service.QuestionService
	db          *gorm.DB
}

func NewController(
	setupSvc service.SetupService,
	optionSvc service.MCOptionService,
	rubricSvc service.RubricService,
	questionSvc service.QuestionService,
	db *gorm.DB,
) *Controller {
	return &Controller{
		setupSvc:    setupSvc,
		optionSvc:   optionSvc,
		rubricSvc:   rubricSvc,
		questionSvc: questionSvc,
		db:          db,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", ctrl.HealthHandler)

	setups := router.Group("/setup")
	setups.GET("", ctrl.GetSetupIndexHandler)
	setups.GET("/:id", ctrl.GetSetupHandler)
	setups.POST("", ctrl.CreateSetupHandler)
	setups.PUT("/:id", ctrl.UpdateSetupHandler)
	setups.DELETE("/:id", ctrl.DeleteSetupHandler)

	options := router.Group("/mc_option")
	options.GET("", ctrl.GetMCOptionIndexHandler)
	options.GET("/:id", ctrl.GetMCOptionHandler)
	options.POST("", ctrl.CreateMCOptionHandler)
	options.PUT("/:id", ctrl.UpdateMCOptionHandler)
	options.DELETE("/:id", ctrl.DeleteMCOptionHandler)

	rubrics := router.Group("/rubric")
	rubrics.GET("", ctrl.GetRubricIndexHandler)
	rubrics.GET("/:id", ctrl.GetRubricHandler)
	rubrics.POST("", ctrl.CreateRubricHandler)
	rubrics.PUT("/:id", ctrl.UpdateRubricHandler)
	rubrics.DELETE("/:id", ctrl.DeleteRubricHandler)

	questions := router.Group("/question")
	questions.GET("", ctrl.GetQuestionIndexHandler)
	questions.GET("/:id", ctrl.GetQuestionHandler)
	questions.POST("", ctrl.CreateQuestionHandler)
	questions.PUT("/:id", ctrl.UpdateQuestionHandler)
	questions.DELETE("/:id", ctrl.DeleteQuestionHandler)
}

// HealthHandler godoc
// @Summary Health check
// @Description Reports whether the database answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	sqlDB, err := ctrl.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		log.Error().Err(err).Msg("Database health check failed")
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "down"})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Database: "up"})
}

// pathID parses the :id parameter. Anything that is not a positive integer
// cannot name a row, so the caller answers 404.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func notFound(c *gin.Context, entity, suffix string) {
	c.String(http.StatusNotFound, "%s %s %s", entity, c.Param("id"), suffix)
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request body")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// respondError maps a service error onto the HTTP response.
func respondError(c *gin.Context, err error, entity, suffix string) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		notFound(c, entity, suffix)
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: verr.Message, Kind: string(verr.Kind)})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}
