package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_movement_analysis/internal/models"
)

// ObservationPointRequest DTO одного наблюдения в партии
// @Description DTO одного наблюдения в партии
type ObservationPointRequest struct {
	Identifier   string   `json:"identifier" validate:"required,min=1,max=255"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Timestamp    string   `json:"timestamp,omitempty"`
	Source       string   `json:"source,omitempty"`
	LandmarkName string   `json:"landmark_name,omitempty"`
}

// IngestBatchRequest DTO для загрузки партии наблюдений
// @Description DTO для загрузки партии наблюдений
type IngestBatchRequest struct {
	Points []ObservationPointRequest `json:"points" validate:"required,min=1,dive"`
}

// IngestBatchResponse DTO для ответа на загрузку партии
// @Description DTO для ответа на загрузку партии
type IngestBatchResponse struct {
	Status           string                    `json:"status"`
	BatchID          uuid.UUID                 `json:"batch_id"`
	ProcessedCount   int                       `json:"processed_count"`
	RawPoints        []models.ObservationPoint `json:"raw_points"`
	TimelineAnalysis *models.TimelineAnalysis  `json:"timeline_analysis"`
}

// TimelineResponse DTO для ответа с хронологией перемещений
// @Description DTO для ответа с хронологией перемещений
type TimelineResponse struct {
	Status   string                   `json:"status"`
	Timeline *models.TimelineAnalysis `json:"timeline_analysis"`
}

// AnalyticsResponse DTO для ответа с оценкой риска и статистикой
// @Description DTO для ответа с оценкой риска и статистикой
type AnalyticsResponse struct {
	Status string                    `json:"status"`
	Risk   *models.RiskAssessment    `json:"risk,omitempty"`
	Stats  *models.TravelStatistics  `json:"stats,omitempty"`
	Points []models.ObservationPoint `json:"points,omitempty"`
}

// RouteResponse DTO для ответа с точками маршрута
// @Description DTO для ответа с точками маршрута
type RouteResponse struct {
	Status string                    `json:"status"`
	Points []models.ObservationPoint `json:"points,omitempty"`
}

// BatchInfoResponse DTO сводки по партии
// @Description DTO сводки по партии
type BatchInfoResponse struct {
	BatchID    uuid.UUID `json:"batch_id"`
	PointCount int       `json:"point_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// StatsResponse DTO для ответа со статистикой загрузок
// @Description DTO для ответа со статистикой загрузок
type StatsResponse struct {
	BatchCount int `json:"batch_count"`
}
