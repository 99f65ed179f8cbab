package models

import (
	"time"

	"github.com/google/uuid"
)

// ObservationPoint представляет одно геопривязанное наблюдение (снимок, событие).
// Координаты и временная метка необязательны: точка без координат или с
// нечитаемой меткой исключается из соответствующих расчетов, но не изменяется.
type ObservationPoint struct {
	Identifier   string   `json:"identifier"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Timestamp    string   `json:"timestamp,omitempty"`
	Source       string   `json:"source,omitempty"`
	LandmarkName string   `json:"landmark_name,omitempty"`
}

// BatchInfo — сводная информация о загруженной партии наблюдений
type BatchInfo struct {
	BatchID    uuid.UUID `json:"batch_id"`
	PointCount int       `json:"point_count"`
	CreatedAt  time.Time `json:"created_at"`
}
