package analysis

import (
	"testing"

	"github.com/shenikar/geo_movement_analysis/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func point(id string, lat, lng float64, ts string) models.ObservationPoint {
	return models.ObservationPoint{
		Identifier: id,
		Latitude:   fptr(lat),
		Longitude:  fptr(lng),
		Timestamp:  ts,
	}
}

func TestParseTimestamp_SupportedLayouts(t *testing.T) {
	cases := []string{
		"2024-01-15 10:30:00",
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00",
		"2024:01:15 10:30:00",
		"2024-01-15",
	}
	for _, ts := range cases {
		at, ok := ParseTimestamp(ts)
		require.True(t, ok, "должен разбираться: %s", ts)
		assert.Equal(t, 2024, at.Year())
		assert.Equal(t, 15, at.Day())
	}
}

func TestParseTimestamp_FailsClosed(t *testing.T) {
	for _, ts := range []string{"", "   ", "not a date", "15/01/2024", "yesterday"} {
		_, ok := ParseTimestamp(ts)
		assert.False(t, ok, "не должен разбираться: %q", ts)
	}
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, CoordinateValid(point("a", 1, 2, "")))
	assert.False(t, CoordinateValid(models.ObservationPoint{Identifier: "b"}))
	assert.False(t, CoordinateValid(models.ObservationPoint{Identifier: "c", Latitude: fptr(1)}))
}

func TestSortChronological_OrdersAscending(t *testing.T) {
	points := []models.ObservationPoint{
		point("late", 1, 1, "2024-03-01 12:00:00"),
		point("early", 2, 2, "2024-01-01 09:00:00"),
		point("middle", 3, 3, "2024-02-01 18:30:00"),
	}

	sorted := SortChronological(points)

	require.Len(t, sorted, 3)
	assert.Equal(t, "early", sorted[0].Identifier)
	assert.Equal(t, "middle", sorted[1].Identifier)
	assert.Equal(t, "late", sorted[2].Identifier)
}

func TestSortChronological_ExcludesInvalid(t *testing.T) {
	points := []models.ObservationPoint{
		point("ok", 1, 1, "2024-01-01 09:00:00"),
		point("bad-time", 2, 2, "когда-то"),
		{Identifier: "no-coords", Timestamp: "2024-01-02 09:00:00"},
	}

	sorted := SortChronological(points)

	require.Len(t, sorted, 1)
	assert.Equal(t, "ok", sorted[0].Identifier)
}

func TestSortChronological_StableOnTies(t *testing.T) {
	points := []models.ObservationPoint{
		point("first", 1, 1, "2024-01-01 09:00:00"),
		point("second", 2, 2, "2024-01-01 09:00:00"),
		point("third", 3, 3, "2024-01-01 09:00:00"),
	}

	sorted := SortChronological(points)

	require.Len(t, sorted, 3)
	assert.Equal(t, "first", sorted[0].Identifier)
	assert.Equal(t, "second", sorted[1].Identifier)
	assert.Equal(t, "third", sorted[2].Identifier)
}

func TestSortChronological_EmptyInput(t *testing.T) {
	assert.Empty(t, SortChronological(nil))
	assert.Empty(t, SortChronological([]models.ObservationPoint{}))
}

func TestSortChronological_DoesNotMutateInput(t *testing.T) {
	points := []models.ObservationPoint{
		point("b", 1, 1, "2024-02-01 00:00:00"),
		point("a", 2, 2, "2024-01-01 00:00:00"),
	}

	_ = SortChronological(points)

	assert.Equal(t, "b", points[0].Identifier)
	assert.Equal(t, "a", points[1].Identifier)
}

func TestArrangeChronological_UnparseableFirst(t *testing.T) {
	points := []models.ObservationPoint{
		point("late", 1, 1, "2024-02-01 00:00:00"),
		point("no-time", 2, 2, ""),
		point("early", 3, 3, "2024-01-01 00:00:00"),
	}

	arranged := ArrangeChronological(points)

	require.Len(t, arranged, 3)
	assert.Equal(t, "no-time", arranged[0].Identifier)
	assert.Equal(t, "early", arranged[1].Identifier)
	assert.Equal(t, "late", arranged[2].Identifier)
}

func TestFilterCoordinateValid_PreservesOrder(t *testing.T) {
	points := []models.ObservationPoint{
		point("a", 1, 1, ""),
		{Identifier: "skip"},
		point("b", 2, 2, ""),
	}

	valid := FilterCoordinateValid(points)

	require.Len(t, valid, 2)
	assert.Equal(t, "a", valid[0].Identifier)
	assert.Equal(t, "b", valid[1].Identifier)
}
