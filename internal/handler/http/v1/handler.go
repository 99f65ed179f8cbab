package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/geo_movement_analysis/internal/config"
	"github.com/shenikar/geo_movement_analysis/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	observationService service.ObservationService
	logger             *logrus.Logger
	validate           *validator.Validate
	cfg                *config.Config
}

func NewHandler(observationService service.ObservationService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		observationService: observationService,
		logger:             logger,
		validate:           validator.New(),
		cfg:                cfg,
	}
}

// @Summary Ingest an observation batch
// @Description Accepts a batch of geotagged observation records, stores it and returns the chronological movement timeline. Requires API key.
// @Tags Batches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param batch body IngestBatchRequest true "Observation batch"
// @Success 201 {object} IngestBatchResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /batches [post]
func (h *Handler) ingestBatch(c *gin.Context) {
	var input IngestBatchRequest
	log := h.logger.WithField("method", "ingestBatch")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	batchID := uuid.New()
	points := DTOToObservationPoints(input)

	timeline, err := h.observationService.IngestBatch(c.Request.Context(), batchID, points)
	if err != nil {
		log.WithError(err).Error("Failed to ingest batch in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, IngestBatchResponse{
		Status:           "success",
		BatchID:          batchID,
		ProcessedCount:   len(points),
		RawPoints:        points,
		TimelineAnalysis: timeline,
	})
}

// @Summary Get a list of observation batches
// @Description Get a paginated list of ingested batches. Requires API key.
// @Tags Batches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} BatchInfoResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /batches [get]
func (h *Handler) listBatches(c *gin.Context) {
	log := h.logger.WithField("method", "listBatches")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	batches, err := h.observationService.ListBatches(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list batches from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToBatchInfoResponses(batches))
}

// @Summary Get movement timeline for a batch
// @Description Get the chronologically sorted movement timeline with anomaly flags. Requires API key.
// @Tags Batches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Batch ID"
// @Success 200 {object} TimelineResponse
// @Failure 400 {object} map[string]string "Invalid batch ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Batch not found"
// @Router /batches/{id}/timeline [get]
func (h *Handler) getTimeline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch ID"})
		return
	}
	log := h.logger.WithField("method", "getTimeline").WithField("id", id)

	timeline, err := h.observationService.GetTimeline(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get timeline from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "batch not found"})
		return
	}
	c.JSON(http.StatusOK, TimelineResponse{Status: "success", Timeline: timeline})
}

// @Summary Get analytics for a batch
// @Description Get the mobility risk assessment and travel statistics for a batch. Requires API key.
// @Tags Batches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Batch ID"
// @Success 200 {object} AnalyticsResponse
// @Failure 400 {object} map[string]string "Invalid batch ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Batch not found"
// @Router /batches/{id}/analytics [get]
func (h *Handler) getAnalytics(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch ID"})
		return
	}
	log := h.logger.WithField("method", "getAnalytics").WithField("id", id)

	report, err := h.observationService.GetAnalytics(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get analytics from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "batch not found"})
		return
	}

	// Партия без координатно-пригодных точек — штатный случай без данных
	if report.Stats.TotalMovements == 0 && report.Stats.UniqueLocationsCount == 0 {
		c.JSON(http.StatusOK, AnalyticsResponse{Status: "no_data"})
		return
	}

	c.JSON(http.StatusOK, AnalyticsResponse{
		Status: "success",
		Risk:   &report.Risk,
		Stats:  &report.Stats,
		Points: report.Points,
	})
}

// @Summary Get route points for a batch
// @Description Get the coordinate-valid points of a batch in chronological order. Requires API key.
// @Tags Batches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Batch ID"
// @Success 200 {object} RouteResponse
// @Failure 400 {object} map[string]string "Invalid batch ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Batch not found"
// @Router /batches/{id}/route [get]
func (h *Handler) getRoute(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch ID"})
		return
	}
	log := h.logger.WithField("method", "getRoute").WithField("id", id)

	route, err := h.observationService.GetRoute(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get route from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "batch not found"})
		return
	}

	if len(route) == 0 {
		c.JSON(http.StatusOK, RouteResponse{Status: "no_data"})
		return
	}
	c.JSON(http.StatusOK, RouteResponse{Status: "success", Points: route})
}

// @Summary Delete an observation batch
// @Description Delete a batch and its cached analytics. Requires API key.
// @Tags Batches
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Batch ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid batch ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /batches/{id} [delete]
func (h *Handler) deleteBatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch ID"})
		return
	}
	log := h.logger.WithField("method", "deleteBatch").WithField("id", id)

	if err := h.observationService.DeleteBatch(c.Request.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete batch in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete batch"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get ingest statistics
// @Description Get the number of batches ingested within the configured time window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /batches/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	batchCount, err := h.observationService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{BatchCount: batchCount})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
