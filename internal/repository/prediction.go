package repository

import (
	"context"
	"fmt"

	"github.com/rishii-05/stroke-prediction-project/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultHistoryLimit — размер выборки истории по умолчанию.
const DefaultHistoryLimit = 10

type PredictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// Save сохраняет запись истории. Записи неизменяемы: только insert.
func (r *PredictionRepository) Save(ctx context.Context, prediction *models.Prediction) error {
	if prediction.ID == "" {
		prediction.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(prediction).Error; err != nil {
		return fmt.Errorf("save prediction: %w", err)
	}
	return nil
}

// ListByUser возвращает историю пользователя, новые записи первыми.
func (r *PredictionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Prediction, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var predictions []models.Prediction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&predictions).Error
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	return predictions, nil
}

// StatsByUser считает агрегированную статистику по истории пользователя.
func (r *PredictionRepository) StatsByUser(ctx context.Context, userID string) (*models.PredictionStats, error) {
	var stats models.PredictionStats
	err := r.db.WithContext(ctx).
		Model(&models.Prediction{}).
		Select("COUNT(*) AS total_predictions, COALESCE(AVG(probability), 0) AS avg_risk, COALESCE(MAX(probability), 0) AS max_risk, MIN(created_at) AS first_prediction").
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("prediction stats: %w", err)
	}
	return &stats, nil
}
