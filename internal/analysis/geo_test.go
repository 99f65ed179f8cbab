package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_KnownDistance(t *testing.T) {
	// Москва -> Санкт-Петербург, ~634 км по дуге большого круга
	dist := HaversineKm(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634.0, dist, 5.0)
}

func TestHaversineKm_SamePoint(t *testing.T) {
	dist := HaversineKm(40.0, -70.0, 40.0, -70.0)
	assert.Equal(t, 0.0, dist)
}

func TestHaversineKm_Symmetric(t *testing.T) {
	forward := HaversineKm(10.0, 10.0, 10.0, 10.1)
	backward := HaversineKm(10.0, 10.1, 10.0, 10.0)
	assert.InDelta(t, forward, backward, 1e-9)
	// один градус долготы на 10-й широте — примерно 11 км за 0.1 градуса
	assert.InDelta(t, 11.0, forward, 0.5)
}

func TestBucketOf_Rounding(t *testing.T) {
	// Координаты в пределах ~11 м попадают в одну ячейку
	a := BucketOf(40.00001, -70.00004)
	b := BucketOf(40.00004, -70.00001)
	assert.Equal(t, a, b)

	// Смещение в 5-м знаке с переносом меняет ячейку
	c := BucketOf(40.00006, -70.0)
	assert.NotEqual(t, a, c)
}

func TestBucketOf_NegativeCoordinates(t *testing.T) {
	b := BucketOf(-33.86786, 151.20732)
	assert.Equal(t, Bucket{Lat: -33.8679, Lng: 151.2073}, b)
}
