package analysis

import (
	"sort"
	"strings"
	"time"

	"github.com/shenikar/geo_movement_analysis/internal/models"
)

// Поддерживаемые представления временных меток. Разбор идет по порядку,
// первый успешный вариант выигрывает.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006:01:02 15:04:05", // формат EXIF DateTimeOriginal
	"2006-01-02",
}

// ParseTimestamp терпимо разбирает временную метку наблюдения.
// Неразбираемая метка делает точку time-invalid, ошибки наружу не выходят.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CoordinateValid сообщает, заданы ли у точки обе координаты
func CoordinateValid(p models.ObservationPoint) bool {
	return p.Latitude != nil && p.Longitude != nil
}

// TimeValid сообщает, разбирается ли временная метка точки
func TimeValid(p models.ObservationPoint) bool {
	_, ok := ParseTimestamp(p.Timestamp)
	return ok
}

// FilterCoordinateValid возвращает точки с обеими координатами,
// сохраняя исходный порядок. Исходный срез не изменяется.
func FilterCoordinateValid(points []models.ObservationPoint) []models.ObservationPoint {
	valid := make([]models.ObservationPoint, 0, len(points))
	for _, p := range points {
		if CoordinateValid(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

// SortChronological отбирает точки, пригодные и по координатам, и по
// времени, и возвращает их отсортированными по возрастанию метки.
// Сортировка стабильная: равные метки сохраняют исходный порядок.
// Пустой результат — штатный случай, вызывающий код обязан его учитывать.
func SortChronological(points []models.ObservationPoint) []models.ObservationPoint {
	type timed struct {
		point models.ObservationPoint
		at    time.Time
	}
	valid := make([]timed, 0, len(points))
	for _, p := range points {
		if !CoordinateValid(p) {
			continue
		}
		at, ok := ParseTimestamp(p.Timestamp)
		if !ok {
			continue
		}
		valid = append(valid, timed{point: p, at: at})
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].at.Before(valid[j].at)
	})

	sorted := make([]models.ObservationPoint, len(valid))
	for i, v := range valid {
		sorted[i] = v.point
	}
	return sorted
}

// ArrangeChronological стабильно упорядочивает ВСЕ точки по временной
// метке; точки с неразбираемой меткой считаются минимальными и идут
// первыми. Используется для подачи данных в оценку риска и статистику
// в едином хронологическом порядке без потери точек.
func ArrangeChronological(points []models.ObservationPoint) []models.ObservationPoint {
	arranged := make([]models.ObservationPoint, len(points))
	copy(arranged, points)

	key := func(p models.ObservationPoint) time.Time {
		at, ok := ParseTimestamp(p.Timestamp)
		if !ok {
			return time.Time{}
		}
		return at
	}
	sort.SliceStable(arranged, func(i, j int) bool {
		return key(arranged[i]).Before(key(arranged[j]))
	})
	return arranged
}
