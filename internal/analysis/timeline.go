package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/shenikar/geo_movement_analysis/internal/models"
)

// Порог физически невозможной скорости. Крейсерская скорость пассажирского
// лайнера ~900 км/ч, поэтому срабатывание означает заведомо нереальный переход.
const maxPlausibleSpeedKmh = 1000.0

// movementBetween вычисляет метрики перемещения между двумя соседними
// точками. Разница времени берется по модулю, поэтому метрики корректны
// только после хронологической сортировки.
func movementBetween(prev, curr models.ObservationPoint, prevAt, currAt time.Time) models.MovementMetrics {
	distance := HaversineKm(*prev.Latitude, *prev.Longitude, *curr.Latitude, *curr.Longitude)
	hours := math.Abs(currAt.Sub(prevAt).Hours())

	var speed float64
	switch {
	case hours == 0 && distance > 0:
		speed = math.Inf(1)
	case hours == 0:
		speed = 0
	default:
		speed = distance / hours
	}

	return models.MovementMetrics{
		DistanceKm:    round2(distance),
		TimeDiffHours: round2(hours),
		SpeedKmh:      round2(speed),
	}
}

// AnalyzeTimeline сортирует наблюдения хронологически и помечает
// физически невозможные переходы. Первая точка не имеет метрик и не
// помечается. Ошибка возможна только при сбое разбора метки внутри
// прохода (после фильтрации недостижимо, но защищено): в этом случае
// возвращается ошибка, а не частичная хронология.
func AnalyzeTimeline(points []models.ObservationPoint) (*models.TimelineAnalysis, error) {
	sorted := SortChronological(points)

	timeline := make([]models.TimelineEntry, 0, len(sorted))
	var prevAt time.Time

	for i, p := range sorted {
		at, ok := ParseTimestamp(p.Timestamp)
		if !ok {
			return nil, fmt.Errorf("analysis: unparseable timestamp %q at point %q", p.Timestamp, p.Identifier)
		}

		entry := models.TimelineEntry{Point: p}
		if i > 0 {
			metrics := movementBetween(sorted[i-1], p, prevAt, at)
			entry.Metrics = &metrics
			if metrics.SpeedKmh > maxPlausibleSpeedKmh {
				entry.Flagged = true
				entry.Reason = fmt.Sprintf("Impossible velocity detected: %.2f km/h", metrics.SpeedKmh)
			}
		}

		timeline = append(timeline, entry)
		prevAt = at
	}

	return &models.TimelineAnalysis{
		ChronologicalTimeline: timeline,
		TotalPointsAnalyzed:   len(sorted),
	}, nil
}
