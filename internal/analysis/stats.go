package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shenikar/geo_movement_analysis/internal/models"
)

// coordLabel форматирует координату для подписи места: целые значения
// получают явную дробную часть ("40.0", а не "40")
func coordLabel(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// GenerateTravelStatistics считает сводную статистику перемещений.
// Расстояния суммируются по координатно-пригодным точкам в порядке,
// заданном вызывающим кодом (хронологическая сортировка — его забота).
// Подпись самого посещаемого места ищется по исходному, неотфильтрованному
// списку наблюдений.
func GenerateTravelStatistics(points []models.ObservationPoint) models.TravelStatistics {
	empty := models.TravelStatistics{MostVisitedLocation: "None"}
	if len(points) == 0 {
		return empty
	}

	valid := FilterCoordinateValid(points)

	var totalDistance float64
	movements := 0
	for i := 0; i+1 < len(valid); i++ {
		totalDistance += HaversineKm(
			*valid[i].Latitude, *valid[i].Longitude,
			*valid[i+1].Latitude, *valid[i+1].Longitude,
		)
		movements++
	}

	// Подсчет посещений по координатным ячейкам. Порядок первого появления
	// отслеживается явно: при равных счетчиках побеждает ячейка,
	// встреченная раньше (итерация по map в Go не упорядочена).
	type visit struct {
		count     int
		firstSeen int
	}
	visits := make(map[Bucket]*visit)
	for i, p := range valid {
		bucket := BucketOf(*p.Latitude, *p.Longitude)
		if v, ok := visits[bucket]; ok {
			v.count++
		} else {
			visits[bucket] = &visit{count: 1, firstSeen: i}
		}
	}

	mostVisited := "None"
	if len(visits) > 0 {
		var top Bucket
		best := &visit{count: 0, firstSeen: len(valid)}
		for bucket, v := range visits {
			if v.count > best.count || (v.count == best.count && v.firstSeen < best.firstSeen) {
				top = bucket
				best = v
			}
		}

		label := ""
		for _, p := range points {
			if !CoordinateValid(p) || BucketOf(*p.Latitude, *p.Longitude) != top {
				continue
			}
			if p.LandmarkName != "" {
				label = p.LandmarkName
				break
			}
		}
		if label == "" {
			label = fmt.Sprintf("Lat: %s, Lng: %s", coordLabel(top.Lat), coordLabel(top.Lng))
		}

		mostVisited = label
		if best.count > 1 {
			mostVisited = fmt.Sprintf("%s (%d visits)", label, best.count)
		}
	}

	avg := 0.0
	if movements > 0 {
		avg = totalDistance / float64(movements)
	}

	return models.TravelStatistics{
		TotalDistanceKm:      round2(totalDistance),
		UniqueLocationsCount: len(visits),
		MostVisitedLocation:  mostVisited,
		AverageMovementKm:    round2(avg),
		TotalMovements:       movements,
	}
}
