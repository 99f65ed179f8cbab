package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/geo_movement_analysis/internal/models"
	"github.com/shenikar/geo_movement_analysis/internal/service"
)

type ObservationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewObservationRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.ObservationRepository {
	return &ObservationRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// SaveBatch сохраняет партию наблюдений одной транзакцией.
// Порядок точек внутри партии фиксируется колонкой seq.
func (r *ObservationRepository) SaveBatch(ctx context.Context, batchID uuid.UUID, points []models.ObservationPoint) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin batch transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO observations (batch_id, identifier, location, captured_at, source, landmark_name, seq)
		VALUES ($1, $2, CASE WHEN $3::float8 IS NULL THEN NULL ELSE ST_SetSRID(ST_MakePoint($3, $4), 4326)::geography END, $5, $6, $7, $8);
	`
	for i, p := range points {
		if _, err := tx.Exec(ctx, query,
			batchID,
			p.Identifier,
			p.Longitude,
			p.Latitude,
			p.Timestamp,
			p.Source,
			p.LandmarkName,
			i,
		); err != nil {
			return fmt.Errorf("failed to insert observation %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit batch transaction: %w", err)
	}
	return nil
}

// GetBatch возвращает точки партии в исходном порядке загрузки
func (r *ObservationRepository) GetBatch(ctx context.Context, batchID uuid.UUID) ([]models.ObservationPoint, error) {
	query := `
		SELECT
			identifier,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			captured_at,
			source,
			landmark_name
		FROM observations
		WHERE batch_id = $1
		ORDER BY seq;
	`
	rows, err := r.db.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}
	defer rows.Close()

	points := make([]models.ObservationPoint, 0)
	for rows.Next() {
		var p models.ObservationPoint
		err := rows.Scan(
			&p.Identifier,
			&p.Latitude,
			&p.Longitude,
			&p.Timestamp,
			&p.Source,
			&p.LandmarkName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan observation row: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error batch iteration: %w", err)
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("batch with id %s not found", batchID)
	}
	return points, nil
}

// DeleteBatch удаляет все наблюдения партии
func (r *ObservationRepository) DeleteBatch(ctx context.Context, batchID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM observations WHERE batch_id = $1;`, batchID)
	if err != nil {
		return fmt.Errorf("failed to delete batch: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("batch with id %s not found for delete", batchID)
	}
	return nil
}

// ListBatches возвращает сводки по партиям с пагинацией
func (r *ObservationRepository) ListBatches(ctx context.Context, page, pageSize int) ([]*models.BatchInfo, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT
			batch_id,
			COUNT(*) as point_count,
			MIN(created_at) as created_at
		FROM observations
		GROUP BY batch_id
		ORDER BY MIN(created_at) DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	defer rows.Close()

	batches := make([]*models.BatchInfo, 0)
	for rows.Next() {
		info := &models.BatchInfo{}
		if err := rows.Scan(&info.BatchID, &info.PointCount, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan batch row: %w", err)
		}
		batches = append(batches, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return batches, nil
}

// GetIngestStats возвращает количество партий, загруженных за последние minutes минут
func (r *ObservationRepository) GetIngestStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT batch_id)
		FROM observations
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get ingest stats: %w", err)
	}
	return count, nil
}

// GetAnalyticsFromCache пытается получить отчет аналитики из Redis
func (r *ObservationRepository) GetAnalyticsFromCache(ctx context.Context, batchID uuid.UUID) (*models.AnalyticsReport, error) {
	key := fmt.Sprintf("analytics:%s", batchID.String())
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analytics from cache: %w", err)
	}

	report := &models.AnalyticsReport{}
	if err := json.Unmarshal(val, report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analytics from cache: %w", err)
	}
	return report, nil
}

// SetAnalyticsCache сохраняет отчет аналитики в Redis
func (r *ObservationRepository) SetAnalyticsCache(ctx context.Context, batchID uuid.UUID, report *models.AnalyticsReport) error {
	key := fmt.Sprintf("analytics:%s", batchID.String())
	val, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set analytics in cache: %w", err)
	}
	return nil
}

// InvalidateAnalyticsCache удаляет отчет аналитики из Redis кэша
func (r *ObservationRepository) InvalidateAnalyticsCache(ctx context.Context, batchID uuid.UUID) error {
	key := fmt.Sprintf("analytics:%s", batchID.String())
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate analytics cache: %w", err)
	}
	return nil
}
