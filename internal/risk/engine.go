package risk

import (
	"context"
	"log/slog"
	"math"
)

// Assessment — результат оценки риска. Создается на каждый запрос,
// как объект никогда не сохраняется.
type Assessment struct {
	// Prediction: 1 — повышенный риск, 0 — низкий, -1 — оценка недоступна.
	Prediction int `json:"prediction"`
	// Probability — итоговая вероятность в процентах, 2 знака.
	Probability     float64  `json:"probability"`
	Reasons         []string `json:"reasons"`
	Recommendations []string `json:"recommendations"`
}

// Engine — движок оценки риска. Scaler и классификатор загружаются один раз
// при старте процесса и дальше только читаются: без блокировок, чистые
// функции над неизменяемым состоянием.
type Engine struct {
	scaler *Scaler
	model  Classifier
}

// NewEngine создает движок. Nil scaler или model означает, что артефакт
// не загрузился на старте: движок работает в деградированном режиме
// и отвечает сентинелом без попыток перезагрузки.
func NewEngine(scaler *Scaler, model Classifier) *Engine {
	return &Engine{scaler: scaler, model: model}
}

// Available сообщает, загружены ли оба артефакта.
func (e *Engine) Available() bool {
	return e.scaler != nil && e.model != nil
}

// Assess выполняет полный цикл: кодирование формы, масштабирование,
// вероятность модели, ручная оценка, слияние, решение, объяснения.
// Ошибки полей формы возвращаются вызывающему; любая ошибка после
// валидации превращается в сентинел, а не в исключение транспортному слою.
func (e *Engine) Assess(ctx context.Context, form map[string]string) (*Assessment, error) {
	v, err := BuildVector(form)
	if err != nil {
		return nil, err
	}
	return e.AssessVector(ctx, v), nil
}

// AssessVector оценивает уже закодированный вектор признаков.
func (e *Engine) AssessVector(ctx context.Context, v Vector) *Assessment {
	if e.scaler == nil {
		slog.Error("Prediction rejected", "error", ErrScalerUnavailable)
		return sentinelAssessment()
	}
	if e.model == nil {
		slog.Error("Prediction rejected", "error", ErrModelUnavailable)
		return sentinelAssessment()
	}

	scaled := e.scaler.Transform(v)

	proba, err := e.model.PredictProba(ctx, scaled)
	if err != nil {
		predErr := &PredictionError{Err: err}
		slog.Error("Model inference failed", "error", predErr)
		return sentinelAssessment()
	}

	modelP := proba[1]
	manualP := ManualScore(v)
	fusedP := Fuse(modelP, manualP)
	prediction := Decide(fusedP)

	slog.Info("Risk assessment completed",
		"prediction", prediction,
		"model_p", modelP,
		"manual_p", manualP,
		"fused_p", fusedP,
	)

	return &Assessment{
		Prediction:      prediction,
		Probability:     math.Round(fusedP*10000) / 100,
		Reasons:         Reasons(v, fusedP),
		Recommendations: Recommendations(v, fusedP),
	}
}

// sentinelAssessment — ответ при недоступной оценке: prediction -1,
// нулевая вероятность и общие тексты вместо проброса ошибки наружу.
func sentinelAssessment() *Assessment {
	return &Assessment{
		Prediction:  -1,
		Probability: 0,
		Reasons: []string{
			"Risk assessment is temporarily unavailable.",
		},
		Recommendations: []string{
			"Please try again later.",
			"If the problem persists, contact the service administrator.",
		},
	}
}
