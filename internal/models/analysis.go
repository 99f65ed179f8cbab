package models

import (
	"encoding/json"
	"math"
)

// Уровни риска мобильности
const (
	RiskLevelLow    = "Low"
	RiskLevelMedium = "Medium"
	RiskLevelHigh   = "High"
)

// MovementMetrics — метрики перемещения между двумя соседними точками.
// Вычисляются на один проход и не сохраняются.
type MovementMetrics struct {
	DistanceKm    float64 `json:"distance_km"`
	TimeDiffHours float64 `json:"time_diff_hours"`
	SpeedKmh      float64 `json:"speed_kmh"`
}

// MarshalJSON сериализует метрики вручную: encoding/json не умеет +Inf,
// а скорость равна бесконечности при нулевой разнице времени.
func (m MovementMetrics) MarshalJSON() ([]byte, error) {
	var speed any = m.SpeedKmh
	if math.IsInf(m.SpeedKmh, 1) {
		speed = "Infinity"
	}
	return json.Marshal(map[string]any{
		"distance_km":     m.DistanceKm,
		"time_diff_hours": m.TimeDiffHours,
		"speed_kmh":       speed,
	})
}

// TimelineEntry — одна точка хронологии с результатом проверки на
// физически невозможное перемещение. Metrics отсутствует у первой точки.
type TimelineEntry struct {
	Point   ObservationPoint `json:"point"`
	Flagged bool             `json:"flagged"`
	Reason  string           `json:"reason,omitempty"`
	Metrics *MovementMetrics `json:"movement_metrics,omitempty"`
}

// TimelineAnalysis — результат хронологического анализа партии
type TimelineAnalysis struct {
	ChronologicalTimeline []TimelineEntry `json:"chronological_timeline"`
	TotalPointsAnalyzed   int             `json:"total_points_analyzed"`
}

// RiskAssessment — аддитивная оценка риска мобильности
type RiskAssessment struct {
	RiskScore int    `json:"risk_score"`
	RiskLevel string `json:"risk_level"`
}

// TravelStatistics — сводная статистика перемещений
type TravelStatistics struct {
	TotalDistanceKm      float64 `json:"total_distance_km"`
	UniqueLocationsCount int     `json:"unique_locations_count"`
	MostVisitedLocation  string  `json:"most_visited_location"`
	AverageMovementKm    float64 `json:"average_movement_km"`
	TotalMovements       int     `json:"total_movements"`
}

// AnalyticsReport объединяет оценку риска и статистику по одной партии.
// Кешируется в Redis целиком.
type AnalyticsReport struct {
	Risk   RiskAssessment     `json:"risk"`
	Stats  TravelStatistics   `json:"stats"`
	Points []ObservationPoint `json:"points"`
}
