package v1

import "github.com/shenikar/geo_movement_analysis/internal/models"

// DTOToObservationPoints преобразует DTO партии в доменные модели наблюдений
func DTOToObservationPoints(req IngestBatchRequest) []models.ObservationPoint {
	points := make([]models.ObservationPoint, len(req.Points))
	for i, p := range req.Points {
		points[i] = models.ObservationPoint{
			Identifier:   p.Identifier,
			Latitude:     p.Latitude,
			Longitude:    p.Longitude,
			Timestamp:    p.Timestamp,
			Source:       p.Source,
			LandmarkName: p.LandmarkName,
		}
	}
	return points
}

// ModelToBatchInfoResponse преобразует доменную сводку партии в DTO для ответа
func ModelToBatchInfoResponse(model *models.BatchInfo) *BatchInfoResponse {
	return &BatchInfoResponse{
		BatchID:    model.BatchID,
		PointCount: model.PointCount,
		CreatedAt:  model.CreatedAt,
	}
}

// ModelsToBatchInfoResponses преобразует слайс сводок в слайс DTO
func ModelsToBatchInfoResponses(models []*models.BatchInfo) []*BatchInfoResponse {
	responses := make([]*BatchInfoResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToBatchInfoResponse(model)
	}
	return responses
}
