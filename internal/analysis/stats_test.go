package analysis

import (
	"testing"

	"github.com/shenikar/geo_movement_analysis/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTravelStatistics_EmptyInput(t *testing.T) {
	result := GenerateTravelStatistics(nil)

	assert.Equal(t, models.TravelStatistics{
		TotalDistanceKm:      0,
		UniqueLocationsCount: 0,
		MostVisitedLocation:  "None",
		AverageMovementKm:    0,
		TotalMovements:       0,
	}, result)
}

func TestGenerateTravelStatistics_SinglePoint(t *testing.T) {
	points := []models.ObservationPoint{point("only", 40.0, -70.0, "2024-01-01 12:00:00")}

	result := GenerateTravelStatistics(points)

	assert.Equal(t, 0.0, result.TotalDistanceKm)
	assert.Equal(t, 0, result.TotalMovements)
	assert.Equal(t, 0.0, result.AverageMovementKm)
	assert.Equal(t, 1, result.UniqueLocationsCount)
	// Единственное посещение — без суффикса с количеством
	assert.Equal(t, "Lat: 40.0, Lng: -70.0", result.MostVisitedLocation)
}

func TestGenerateTravelStatistics_MovementsAndAverage(t *testing.T) {
	points := []models.ObservationPoint{
		point("a", 50.0, 10.0, "2024-01-01 08:00:00"),
		point("b", 51.0, 10.0, "2024-01-01 12:00:00"),
		point("c", 52.0, 10.0, "2024-01-01 18:00:00"),
	}

	result := GenerateTravelStatistics(points)

	assert.Equal(t, 2, result.TotalMovements)
	// Градус широты ~111.2 км, итог ~222.4 км
	assert.InDelta(t, 222.4, result.TotalDistanceKm, 1.0)
	assert.InDelta(t, result.TotalDistanceKm/2, result.AverageMovementKm, 0.01)
	assert.Equal(t, 3, result.UniqueLocationsCount)
}

func TestGenerateTravelStatistics_MostVisitedWithLandmark(t *testing.T) {
	home := point("h1", 48.8584, 2.2945, "2024-01-01 10:00:00")
	home.LandmarkName = "Eiffel Tower"
	points := []models.ObservationPoint{
		home,
		point("h2", 48.8584, 2.2945, "2024-01-01 14:00:00"),
		point("h3", 48.8584, 2.2945, "2024-01-02 10:00:00"),
		point("other", 48.8606, 2.3376, "2024-01-02 15:00:00"),
	}

	result := GenerateTravelStatistics(points)

	assert.Equal(t, "Eiffel Tower (3 visits)", result.MostVisitedLocation)
	assert.Equal(t, 2, result.UniqueLocationsCount)
}

func TestGenerateTravelStatistics_LandmarkFromUnfilteredList(t *testing.T) {
	// Имя берется из первой точки исходного списка с совпадающей ячейкой
	// и непустым landmark_name, даже если она time-invalid
	unnamed := point("h1", 40.0, -70.0, "2024-01-01 10:00:00")
	named := point("h2", 40.0, -70.0, "")
	named.LandmarkName = "Old Lighthouse"
	points := []models.ObservationPoint{unnamed, named}

	result := GenerateTravelStatistics(points)

	assert.Equal(t, "Old Lighthouse (2 visits)", result.MostVisitedLocation)
}

func TestGenerateTravelStatistics_TieBrokenByFirstEncountered(t *testing.T) {
	points := []models.ObservationPoint{
		point("a1", 40.0, -70.0, "2024-01-01 10:00:00"),
		point("b1", 41.0, -71.0, "2024-01-01 12:00:00"),
		point("a2", 40.0, -70.0, "2024-01-01 14:00:00"),
		point("b2", 41.0, -71.0, "2024-01-01 16:00:00"),
	}

	result := GenerateTravelStatistics(points)

	// Обе ячейки встречаются дважды, побеждает встреченная раньше
	assert.Equal(t, "Lat: 40.0, Lng: -70.0 (2 visits)", result.MostVisitedLocation)
}

func TestGenerateTravelStatistics_FallbackLabelFormatting(t *testing.T) {
	points := []models.ObservationPoint{
		point("a1", 37.6173, 55.7558, "2024-01-01 10:00:00"),
		point("a2", 37.6173, 55.7558, "2024-01-01 12:00:00"),
	}

	result := GenerateTravelStatistics(points)

	require.Equal(t, 1, result.UniqueLocationsCount)
	// Дробные координаты выводятся как есть, целые — с явной дробной частью
	assert.Equal(t, "Lat: 37.6173, Lng: 55.7558 (2 visits)", result.MostVisitedLocation)
	assert.Equal(t, "Lat: -1.0, Lng: 0.0", GenerateTravelStatistics(
		[]models.ObservationPoint{point("z", -1.0, 0.0, "")},
	).MostVisitedLocation)
}

func TestGenerateTravelStatistics_IgnoresCoordinateInvalid(t *testing.T) {
	points := []models.ObservationPoint{
		point("a", 40.0, -70.0, "2024-01-01 10:00:00"),
		{Identifier: "no-coords", Timestamp: "2024-01-01 11:00:00"},
		point("b", 41.0, -70.0, "2024-01-01 12:00:00"),
	}

	result := GenerateTravelStatistics(points)

	// Точка без координат не образует перемещения и не считается местом
	assert.Equal(t, 1, result.TotalMovements)
	assert.Equal(t, 2, result.UniqueLocationsCount)
}

func TestGenerateTravelStatistics_UniqueBoundedByValidCount(t *testing.T) {
	points := []models.ObservationPoint{
		point("a", 40.0, -70.0, ""),
		point("b", 40.0, -70.0, ""),
		point("c", 41.0, -71.0, ""),
	}

	result := GenerateTravelStatistics(points)

	assert.LessOrEqual(t, result.UniqueLocationsCount, 3)
	assert.Equal(t, 2, result.UniqueLocationsCount)
}

func TestGenerateTravelStatistics_Idempotent(t *testing.T) {
	points := []models.ObservationPoint{
		point("a", 40.0, -70.0, "2024-01-01 10:00:00"),
		point("b", 41.0, -71.0, "2024-01-01 12:00:00"),
	}

	assert.Equal(t, GenerateTravelStatistics(points), GenerateTravelStatistics(points))
}
