package analysis

import (
	"math"
	"testing"

	"github.com/shenikar/geo_movement_analysis/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeTimeline_Empty(t *testing.T) {
	result, err := AnalyzeTimeline(nil)

	require.NoError(t, err)
	assert.Empty(t, result.ChronologicalTimeline)
	assert.Equal(t, 0, result.TotalPointsAnalyzed)
}

func TestAnalyzeTimeline_FirstEntryHasNoMetrics(t *testing.T) {
	points := []models.ObservationPoint{
		point("b", 55.75, 37.61, "2024-01-02 10:00:00"),
		point("a", 55.76, 37.62, "2024-01-01 10:00:00"),
	}

	result, err := AnalyzeTimeline(points)

	require.NoError(t, err)
	require.Len(t, result.ChronologicalTimeline, 2)

	first := result.ChronologicalTimeline[0]
	assert.Equal(t, "a", first.Point.Identifier)
	assert.False(t, first.Flagged)
	assert.Nil(t, first.Metrics)

	second := result.ChronologicalTimeline[1]
	assert.Equal(t, "b", second.Point.Identifier)
	require.NotNil(t, second.Metrics)
	assert.Equal(t, 24.0, second.Metrics.TimeDiffHours)
}

func TestAnalyzeTimeline_ImpossibleVelocityFlagged(t *testing.T) {
	// ~11 км за одну секунду — скорость заведомо выше 1000 км/ч
	points := []models.ObservationPoint{
		point("a", 10.0, 10.0, "2024-01-01 00:00:00"),
		point("b", 10.0, 10.1, "2024-01-01 00:00:01"),
	}

	result, err := AnalyzeTimeline(points)

	require.NoError(t, err)
	require.Len(t, result.ChronologicalTimeline, 2)

	entry := result.ChronologicalTimeline[1]
	assert.True(t, entry.Flagged)
	assert.Contains(t, entry.Reason, "Impossible velocity detected")
	require.NotNil(t, entry.Metrics)
	assert.Greater(t, entry.Metrics.SpeedKmh, 1000.0)
}

func TestAnalyzeTimeline_PlausibleSpeedNotFlagged(t *testing.T) {
	// ~111 км за два часа — обычная поездка
	points := []models.ObservationPoint{
		point("a", 50.0, 10.0, "2024-01-01 08:00:00"),
		point("b", 51.0, 10.0, "2024-01-01 10:00:00"),
	}

	result, err := AnalyzeTimeline(points)

	require.NoError(t, err)
	entry := result.ChronologicalTimeline[1]
	assert.False(t, entry.Flagged)
	assert.Empty(t, entry.Reason)
}

func TestAnalyzeTimeline_ExactThresholdNotFlagged(t *testing.T) {
	// Порог строгий: ровно 1000.00 км/ч не помечается
	metrics := models.MovementMetrics{SpeedKmh: 1000.0}
	assert.False(t, metrics.SpeedKmh > maxPlausibleSpeedKmh)

	above := models.MovementMetrics{SpeedKmh: 1000.01}
	assert.True(t, above.SpeedKmh > maxPlausibleSpeedKmh)
}

func TestAnalyzeTimeline_ZeroTimeZeroDistance(t *testing.T) {
	// Одинаковые координаты и метки: расстояние и время нулевые, скорость 0
	points := []models.ObservationPoint{
		point("a", 40.0, -70.0, "2024-01-01 12:00:00"),
		point("b", 40.0, -70.0, "2024-01-01 12:00:00"),
	}

	result, err := AnalyzeTimeline(points)

	require.NoError(t, err)
	entry := result.ChronologicalTimeline[1]
	require.NotNil(t, entry.Metrics)
	assert.Equal(t, 0.0, entry.Metrics.SpeedKmh)
	assert.False(t, entry.Flagged)
}

func TestAnalyzeTimeline_ZeroTimeNonzeroDistance(t *testing.T) {
	// Разные места с одной меткой времени: скорость бесконечна, переход помечен
	points := []models.ObservationPoint{
		point("a", 40.0, -70.0, "2024-01-01 12:00:00"),
		point("b", 41.0, -70.0, "2024-01-01 12:00:00"),
	}

	result, err := AnalyzeTimeline(points)

	require.NoError(t, err)
	entry := result.ChronologicalTimeline[1]
	require.NotNil(t, entry.Metrics)
	assert.True(t, math.IsInf(entry.Metrics.SpeedKmh, 1))
	assert.True(t, entry.Flagged)
}

func TestAnalyzeTimeline_SkipsInvalidPoints(t *testing.T) {
	points := []models.ObservationPoint{
		point("ok1", 40.0, -70.0, "2024-01-01 12:00:00"),
		{Identifier: "no-coords", Timestamp: "2024-01-01 13:00:00"},
		point("bad-time", 40.1, -70.1, "скоро"),
		point("ok2", 40.2, -70.2, "2024-01-01 18:00:00"),
	}

	result, err := AnalyzeTimeline(points)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalPointsAnalyzed)
	require.Len(t, result.ChronologicalTimeline, 2)
	assert.Equal(t, "ok1", result.ChronologicalTimeline[0].Point.Identifier)
	assert.Equal(t, "ok2", result.ChronologicalTimeline[1].Point.Identifier)
}

func TestAnalyzeTimeline_Idempotent(t *testing.T) {
	points := []models.ObservationPoint{
		point("a", 10.0, 10.0, "2024-01-01 00:00:00"),
		point("b", 10.0, 10.1, "2024-01-01 00:00:01"),
		point("c", 20.0, 20.0, "2024-01-02 00:00:00"),
	}

	first, err := AnalyzeTimeline(points)
	require.NoError(t, err)
	second, err := AnalyzeTimeline(points)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
