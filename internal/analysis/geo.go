package analysis

import "math"

// Средний радиус Земли в километрах (сферическая модель)
const earthRadiusKm = 6371.0

// HaversineKm возвращает расстояние по дуге большого круга между двумя
// координатами в километрах. Одна и та же модель используется во всех
// трех компонентах анализа.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// Bucket — координатная ячейка с округлением до 4 знаков (~11 м),
// используется для распознавания "одного и того же места".
type Bucket struct {
	Lat float64
	Lng float64
}

// BucketOf округляет координаты точки до координатной ячейки
func BucketOf(lat, lng float64) Bucket {
	return Bucket{Lat: round4(lat), Lng: round4(lng)}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func round2(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*100) / 100
}
