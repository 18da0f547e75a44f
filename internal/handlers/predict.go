package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rishii-05/stroke-prediction-project/internal/models"
	"github.com/rishii-05/stroke-prediction-project/internal/repository"
	"github.com/rishii-05/stroke-prediction-project/internal/risk"
	"github.com/rishii-05/stroke-prediction-project/internal/service"

	"github.com/gin-gonic/gin"
)

// PredictionHandler обрабатывает HTTP запросы оценки риска
type PredictionHandler struct {
	predictionService *service.PredictionService
}

// NewPredictionHandler создает новый обработчик предсказаний
func NewPredictionHandler(predictionService *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// Predict выполняет оценку риска инсульта
// @Summary Оценка риска инсульта
// @Description Кодирует поля формы, получает вероятность модели, применяет ручную оценку и возвращает решение с объяснениями
// @Tags predict
// @Accept json
// @Produce json
// @Param request body map[string]string true "Поля формы (10 признаков)"
// @Success 200 {object} risk.Assessment "Результат оценки"
// @Failure 400 {object} models.ErrorResponse "Ошибка входных данных"
// @Router /predict [post]
func (h *PredictionHandler) Predict(c *gin.Context) {
	var form map[string]string
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
		return
	}

	// user_id пуст для анонимного запроса: предсказание выполняется,
	// история не пишется
	userID := c.GetString("user_id")

	assessment, err := h.predictionService.Predict(c.Request.Context(), userID, form)
	if err != nil {
		status, resp := inputErrorResponse(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// History возвращает историю предсказаний пользователя
// @Summary История предсказаний
// @Description Возвращает записи истории пользователя, новые первыми
// @Tags predict
// @Produce json
// @Param limit query int false "Максимум записей (по умолчанию 10)"
// @Success 200 {array} models.Prediction "История"
// @Failure 401 {object} models.ErrorResponse "Не авторизован"
// @Security BearerAuth
// @Router /predictions [get]
func (h *PredictionHandler) History(c *gin.Context) {
	userID := c.GetString("user_id")

	limit := repository.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid request",
				Details: "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	predictions, err := h.predictionService.History(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "failed to load prediction history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"predictions": predictions,
		"count":       len(predictions),
	})
}

// Stats возвращает статистику предсказаний пользователя
// @Summary Статистика пользователя
// @Description Количество предсказаний, средний и максимальный риск, дата первой оценки
// @Tags predict
// @Produce json
// @Success 200 {object} models.PredictionStats "Статистика"
// @Failure 401 {object} models.ErrorResponse "Не авторизован"
// @Security BearerAuth
// @Router /predictions/stats [get]
func (h *PredictionHandler) Stats(c *gin.Context) {
	userID := c.GetString("user_id")

	stats, err := h.predictionService.Stats(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "failed to load prediction stats",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Health проверяет состояние сервиса
// @Summary Проверка состояния сервиса
// @Description Возвращает статус сервиса и доступность движка предсказаний
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Сервис работает"
// @Router /health [get]
func (h *PredictionHandler) Health(c *gin.Context) {
	engineStatus := "ok"
	status := "healthy"
	code := http.StatusOK
	if !h.predictionService.Available() {
		engineStatus = "degraded: model or scaler not loaded"
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"engine":    engineStatus,
		"timestamp": time.Now().UTC(),
	})
}

// inputErrorResponse переводит ошибку кодирования поля в HTTP ответ.
// Возвращается первая обнаруженная проблема, без агрегации по полям.
func inputErrorResponse(err error) (int, models.ErrorResponse) {
	var missing *risk.MissingFieldError
	if errors.As(err, &missing) {
		return http.StatusBadRequest, models.ErrorResponse{
			Error: "missing input",
			Field: missing.Field,
		}
	}

	var invalid *risk.InvalidInputError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid input, please enter numerical values",
			Field: invalid.Field,
		}
	}

	var unknown *risk.UnknownCategoryError
	if errors.As(err, &unknown) {
		return http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid input",
			Field: unknown.Field,
		}
	}

	return http.StatusInternalServerError, models.ErrorResponse{
		Error: "something went wrong, please try again",
	}
}
