package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/santiago_crash_dashboard/internal/config"
	"github.com/shenikar/santiago_crash_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	dashboardService service.DashboardService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(dashboardService service.DashboardService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary List streets
// @Description Distinct location labels of the dataset in first-seen order. Inputs of both selectors.
// @Tags Streets
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StreetsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /streets [get]
func (h *Handler) listStreets(c *gin.Context) {
	log := h.logger.WithField("method", "listStreets")

	streets, err := h.dashboardService.Streets(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, StreetsResponse{Streets: streets})
}

// @Summary Single street selection
// @Description Crash count for one selected street. An empty street selects the first location of the dataset.
// @Tags Selection
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param selection body SingleSelectionRequest true "Single street selection"
// @Success 200 {object} StreetMetricResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dataset has no streets"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /selection/single [post]
func (h *Handler) selectSingle(c *gin.Context) {
	var input SingleSelectionRequest
	log := h.logger.WithField("method", "selectSingle")

	if !h.bind(c, log, &input) {
		return
	}

	metric, err := h.dashboardService.SingleStreet(c.Request.Context(), input.Street)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStreetMetricResponse(metric))
}

// @Summary Multi street selection
// @Description Combined crash count for several streets. Labels of the same street are counted once.
// @Tags Selection
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param selection body MultiSelectionRequest true "Multi street selection"
// @Success 200 {object} SelectionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /selection/multi [post]
func (h *Handler) selectMulti(c *gin.Context) {
	var input MultiSelectionRequest
	log := h.logger.WithField("method", "selectMulti")

	if !h.bind(c, log, &input) {
		return
	}

	agg, err := h.dashboardService.MultiStreet(c.Request.Context(), input.Streets)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSelectionResponse(agg))
}

// @Summary Dashboard
// @Description All panels (metrics, donut, map, heatmap, summary) for the current sidebar state.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param state body DashboardRequest true "Sidebar state"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Dataset has no streets"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard [post]
func (h *Handler) getDashboard(c *gin.Context) {
	var input DashboardRequest
	log := h.logger.WithField("method", "getDashboard")

	if !h.bind(c, log, &input) {
		return
	}

	dashboard, err := h.dashboardService.Dashboard(c.Request.Context(), input.SingleStreet, input.MultiStreets)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDashboardResponse(dashboard))
}

// @Summary Correlation heatmap
// @Description Pearson correlation between severity columns and accident counts over the whole dataset.
// @Tags Charts
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} CorrelationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /charts/heatmap [get]
func (h *Handler) getHeatmap(c *gin.Context) {
	log := h.logger.WithField("method", "getHeatmap")

	heatmap, err := h.dashboardService.Heatmap(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToCorrelationResponse(heatmap))
}

// @Summary Dataset summary
// @Description Totals, average injured per crash, data source and insights.
// @Tags Summary
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	log := h.logger.WithField("method", "getSummary")

	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSummaryResponse(summary))
}

// @Summary Get application health status
// @Description Get health status of the application and the loaded dataset
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	health := h.dashboardService.Health(c.Request.Context())
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "ok",
		Records:  health.Records,
		LoadedAt: health.LoadedAt,
	})
}

// bind разбирает и валидирует JSON тела запроса, при ошибке сам отвечает 400
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	if errors.Is(err, service.ErrNoStreets) {
		log.WithError(err).Warn("Dataset has no streets to select")
		c.JSON(http.StatusNotFound, gin.H{"error": "dataset has no streets"})
		return
	}
	log.WithError(err).Error("Dashboard service failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
