package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_movement_analysis/internal/analysis"
	"github.com/shenikar/geo_movement_analysis/internal/config"
	"github.com/shenikar/geo_movement_analysis/internal/models"
	"github.com/shenikar/geo_movement_analysis/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ObservationRepository определяет контракт для работы с хранилищем наблюдений
type ObservationRepository interface {
	SaveBatch(ctx context.Context, batchID uuid.UUID, points []models.ObservationPoint) error
	GetBatch(ctx context.Context, batchID uuid.UUID) ([]models.ObservationPoint, error)
	DeleteBatch(ctx context.Context, batchID uuid.UUID) error
	ListBatches(ctx context.Context, page, pageSize int) ([]*models.BatchInfo, error)
	GetIngestStats(ctx context.Context, minutes int) (int, error)
	GetAnalyticsFromCache(ctx context.Context, batchID uuid.UUID) (*models.AnalyticsReport, error)
	SetAnalyticsCache(ctx context.Context, batchID uuid.UUID, report *models.AnalyticsReport) error
	InvalidateAnalyticsCache(ctx context.Context, batchID uuid.UUID) error
}

// ObservationService определяет контракт бизнес-логики анализа перемещений
type ObservationService interface {
	IngestBatch(ctx context.Context, batchID uuid.UUID, points []models.ObservationPoint) (*models.TimelineAnalysis, error)
	GetTimeline(ctx context.Context, batchID uuid.UUID) (*models.TimelineAnalysis, error)
	GetAnalytics(ctx context.Context, batchID uuid.UUID) (*models.AnalyticsReport, error)
	GetRoute(ctx context.Context, batchID uuid.UUID) ([]models.ObservationPoint, error)
	ListBatches(ctx context.Context, page, pageSize int) ([]*models.BatchInfo, error)
	DeleteBatch(ctx context.Context, batchID uuid.UUID) error
	GetStats(ctx context.Context) (int, error)
}

type observationService struct {
	repo             ObservationRepository
	logger           *logrus.Logger
	cfg              *config.Config
	webhookPublisher webhook.WebhookPublisher
}

func NewObservationService(repo ObservationRepository, logger *logrus.Logger, cfg *config.Config, webhookPublisher webhook.WebhookPublisher) ObservationService {
	return &observationService{
		repo:             repo,
		logger:           logger,
		cfg:              cfg,
		webhookPublisher: webhookPublisher,
	}
}

// IngestBatch сохраняет партию наблюдений, строит хронологию и публикует
// вебхук, если партия получает высокий уровень риска
func (s *observationService) IngestBatch(ctx context.Context, batchID uuid.UUID, points []models.ObservationPoint) (*models.TimelineAnalysis, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "observation",
		"method":   "IngestBatch",
		"batch_id": batchID,
		"points":   len(points),
	})
	log.Info("Ingesting observation batch")

	if err := s.repo.SaveBatch(ctx, batchID, points); err != nil {
		log.WithError(err).Error("Failed to save batch in repository")
		return nil, fmt.Errorf("service: could not save batch: %w", err)
	}

	// Старые аналитические результаты партии больше не актуальны
	if err := s.repo.InvalidateAnalyticsCache(ctx, batchID); err != nil {
		log.WithError(err).Warn("Failed to invalidate analytics cache")
	}

	timeline, err := analysis.AnalyzeTimeline(points)
	if err != nil {
		log.WithError(err).Error("Failed to analyze timeline")
		return nil, fmt.Errorf("service: could not analyze timeline: %w", err)
	}

	// Оценка риска при загрузке: партии с высоким уровнем требуют
	// немедленного оповещения
	risk := analysis.CalculateRiskScore(points)
	if risk.RiskLevel == models.RiskLevelHigh {
		event := webhook.WebhookEvent{
			BatchID:    batchID,
			RiskScore:  risk.RiskScore,
			RiskLevel:  risk.RiskLevel,
			PointCount: len(points),
			Timestamp:  time.Now(),
		}
		if err := s.webhookPublisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish high risk webhook event")
		}
	}

	log.WithFields(logrus.Fields{
		"analyzed":   timeline.TotalPointsAnalyzed,
		"risk_level": risk.RiskLevel,
	}).Info("Batch ingested successfully")
	return timeline, nil
}

// GetTimeline строит хронологию перемещений по сохраненной партии
func (s *observationService) GetTimeline(ctx context.Context, batchID uuid.UUID) (*models.TimelineAnalysis, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "observation",
		"method":   "GetTimeline",
		"batch_id": batchID,
	})
	log.Info("Building movement timeline")

	points, err := s.repo.GetBatch(ctx, batchID)
	if err != nil {
		log.WithError(err).Error("Failed to get batch from repository")
		return nil, fmt.Errorf("service: could not get batch: %w", err)
	}

	timeline, err := analysis.AnalyzeTimeline(points)
	if err != nil {
		log.WithError(err).Error("Failed to analyze timeline")
		return nil, fmt.Errorf("service: could not analyze timeline: %w", err)
	}
	return timeline, nil
}

// GetAnalytics возвращает оценку риска и статистику перемещений по партии.
// Результат кешируется в Redis; промах кеша приводит к пересчету.
func (s *observationService) GetAnalytics(ctx context.Context, batchID uuid.UUID) (*models.AnalyticsReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "observation",
		"method":   "GetAnalytics",
		"batch_id": batchID,
	})
	log.Info("Fetching analytics report")

	cached, err := s.repo.GetAnalyticsFromCache(ctx, batchID)
	if err != nil {
		log.WithError(err).Warn("Failed to read analytics cache")
	}
	if cached != nil {
		log.Info("Analytics report served from cache")
		return cached, nil
	}

	points, err := s.repo.GetBatch(ctx, batchID)
	if err != nil {
		log.WithError(err).Error("Failed to get batch from repository")
		return nil, fmt.Errorf("service: could not get batch: %w", err)
	}

	// Риск и статистика считаются по единому хронологическому порядку
	arranged := analysis.ArrangeChronological(points)
	report := &models.AnalyticsReport{
		Risk:   analysis.CalculateRiskScore(arranged),
		Stats:  analysis.GenerateTravelStatistics(arranged),
		Points: arranged,
	}

	if err := s.repo.SetAnalyticsCache(ctx, batchID, report); err != nil {
		log.WithError(err).Warn("Failed to cache analytics report")
	}

	log.WithField("risk_level", report.Risk.RiskLevel).Info("Analytics report computed")
	return report, nil
}

// GetRoute возвращает точки с координатами в хронологическом порядке.
// Точки с нечитаемой временной меткой не выбрасываются, а идут первыми.
func (s *observationService) GetRoute(ctx context.Context, batchID uuid.UUID) ([]models.ObservationPoint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "observation",
		"method":   "GetRoute",
		"batch_id": batchID,
	})
	log.Info("Building route")

	points, err := s.repo.GetBatch(ctx, batchID)
	if err != nil {
		log.WithError(err).Error("Failed to get batch from repository")
		return nil, fmt.Errorf("service: could not get batch: %w", err)
	}

	route := analysis.ArrangeChronological(analysis.FilterCoordinateValid(points))
	log.WithField("route_points", len(route)).Info("Route built successfully")
	return route, nil
}

// ListBatches возвращает список партий с пагинацией
func (s *observationService) ListBatches(ctx context.Context, page, pageSize int) ([]*models.BatchInfo, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "observation",
		"method":    "ListBatches",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing observation batches")

	batches, err := s.repo.ListBatches(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list batches from repository")
		return nil, fmt.Errorf("service: could not list batches: %w", err)
	}

	log.WithField("count", len(batches)).Info("Batches listed successfully")
	return batches, nil
}

// DeleteBatch удаляет партию наблюдений вместе с кешем аналитики
func (s *observationService) DeleteBatch(ctx context.Context, batchID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "observation",
		"method":   "DeleteBatch",
		"batch_id": batchID,
	})
	log.Info("Deleting observation batch")

	if err := s.repo.DeleteBatch(ctx, batchID); err != nil {
		log.WithError(err).Error("Failed to delete batch in repository")
		return fmt.Errorf("service: could not delete batch: %w", err)
	}

	if err := s.repo.InvalidateAnalyticsCache(ctx, batchID); err != nil {
		log.WithError(err).Warn("Failed to invalidate analytics cache")
	}

	log.Info("Batch deleted successfully")
	return nil
}

// GetStats возвращает количество партий, загруженных за настроенное окно
func (s *observationService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "observation",
		"method":  "GetStats",
	})
	log.Info("Fetching ingest stats")

	count, err := s.repo.GetIngestStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get ingest stats from repository")
		return 0, fmt.Errorf("service: could not get ingest stats: %w", err)
	}
	return count, nil
}
