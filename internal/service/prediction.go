package service

import (
	"context"
	"log/slog"

	"github.com/rishii-05/stroke-prediction-project/internal/models"
	"github.com/rishii-05/stroke-prediction-project/internal/repository"
	"github.com/rishii-05/stroke-prediction-project/internal/risk"
)

// PredictionService отвечает за оценку риска и историю предсказаний.
type PredictionService struct {
	engine *risk.Engine
	repo   *repository.PredictionRepository
}

// NewPredictionService создает новый сервис предсказаний.
func NewPredictionService(engine *risk.Engine, repo *repository.PredictionRepository) *PredictionService {
	return &PredictionService{
		engine: engine,
		repo:   repo,
	}
}

// Available сообщает, готов ли движок к предсказаниям.
func (s *PredictionService) Available() bool {
	return s.engine.Available()
}

// Predict выполняет оценку риска. Для аутентифицированного пользователя
// (userID != "") успешный результат денормализуется в историю. Ошибка
// сохранения истории логируется, но не ломает ответ пользователю.
func (s *PredictionService) Predict(ctx context.Context, userID string, form map[string]string) (*risk.Assessment, error) {
	v, err := risk.BuildVector(form)
	if err != nil {
		return nil, err
	}

	assessment := s.engine.AssessVector(ctx, v)

	if userID != "" && assessment.Prediction >= 0 {
		record := &models.Prediction{
			UserID:           userID,
			Age:              int(v.Age),
			Gender:           v.GenderLabel(),
			Hypertension:     int(v.Hypertension),
			HeartDisease:     int(v.HeartDisease),
			AvgGlucoseLevel:  v.AvgGlucoseLevel,
			BMI:              v.BMI,
			SmokingStatus:    v.SmokingLabel(),
			PredictionResult: assessment.Prediction,
			Probability:      assessment.Probability,
		}
		if err := s.repo.Save(ctx, record); err != nil {
			slog.Error("Failed to save prediction history", "error", err, "user_id", userID)
		}
	}

	return assessment, nil
}

// History возвращает историю предсказаний пользователя.
func (s *PredictionService) History(ctx context.Context, userID string, limit int) ([]models.Prediction, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

// Stats возвращает агрегированную статистику пользователя.
func (s *PredictionService) Stats(ctx context.Context, userID string) (*models.PredictionStats, error) {
	return s.repo.StatsByUser(ctx, userID)
}
