package analysis

import (
	"github.com/shenikar/geo_movement_analysis/internal/models"
)

// Пороговые значения и баллы аддитивных правил оценки риска.
// Правила независимы: каждое либо дает свой фиксированный вклад, либо ноль.
const (
	longRangeDistanceKm = 300.0
	longRangePoints     = 20

	suddenJumpDistanceKm = 200.0
	suddenJumpPoints     = 15

	repeatedVisitCount  = 3
	repeatedVisitPoints = 15

	nighttimeRatio  = 0.5
	nighttimePoints = 20

	mediumRiskThreshold = 20
	highRiskThreshold   = 40
)

// CalculateRiskScore применяет фиксированный набор эвристик к партии
// наблюдений и возвращает суммарный балл и дискретный уровень риска.
// Пустой вход дает 0 баллов и уровень Low.
func CalculateRiskScore(points []models.ObservationPoint) models.RiskAssessment {
	if len(points) == 0 {
		return models.RiskAssessment{RiskScore: 0, RiskLevel: models.RiskLevelLow}
	}

	score := 0

	// Правила по расстоянию считаются по хронологически отсортированным
	// точкам. Если ни одна точка не пригодна по времени, сортировка
	// невозможна — считаем по координатно-пригодным точкам в исходном
	// порядке (приближение, а не свойство корректности).
	ordered := SortChronological(points)
	if len(ordered) == 0 {
		ordered = FilterCoordinateValid(points)
	}

	var totalDistance, maxJump float64
	for i := 0; i+1 < len(ordered); i++ {
		dist := HaversineKm(
			*ordered[i].Latitude, *ordered[i].Longitude,
			*ordered[i+1].Latitude, *ordered[i+1].Longitude,
		)
		totalDistance += dist
		if dist > maxJump {
			maxJump = dist
		}
	}

	if totalDistance > longRangeDistanceKm {
		score += longRangePoints
	}
	if maxJump > suddenJumpDistanceKm {
		score += suddenJumpPoints
	}

	// Повторные посещения: координатные ячейки считаются по всем точкам
	// с координатами, независимо от пригодности метки времени.
	visits := make(map[Bucket]int)
	for _, p := range points {
		if !CoordinateValid(p) {
			continue
		}
		visits[BucketOf(*p.Latitude, *p.Longitude)]++
	}
	for _, count := range visits {
		if count > repeatedVisitCount {
			score += repeatedVisitPoints
			break
		}
	}

	// Ночная активность: в числителе только точки с разбираемой меткой и
	// часом в [22,24) или [0,5), в знаменателе — весь вход. Точка без
	// читаемой метки снижает долю, это сделано намеренно.
	nighttime := 0
	for _, p := range points {
		at, ok := ParseTimestamp(p.Timestamp)
		if !ok {
			continue
		}
		if hour := at.Hour(); hour >= 22 || hour < 5 {
			nighttime++
		}
	}
	if float64(nighttime)/float64(len(points)) > nighttimeRatio {
		score += nighttimePoints
	}

	level := models.RiskLevelLow
	switch {
	case score >= highRiskThreshold:
		level = models.RiskLevelHigh
	case score >= mediumRiskThreshold:
		level = models.RiskLevelMedium
	}

	return models.RiskAssessment{RiskScore: score, RiskLevel: level}
}
