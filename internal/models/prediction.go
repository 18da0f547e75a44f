package models

import "time"

// Prediction — денормализованная запись истории предсказаний.
// Неизменяема после создания; выборки упорядочены по дате по убыванию.
type Prediction struct {
	ID               string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           string    `gorm:"type:uuid;index;not null" json:"user_id"`
	CreatedAt        time.Time `json:"prediction_date"`
	Age              int       `json:"age"`
	Gender           string    `gorm:"type:varchar(20)" json:"gender"`
	Hypertension     int       `json:"hypertension"`
	HeartDisease     int       `json:"heart_disease"`
	AvgGlucoseLevel  float64   `json:"avg_glucose_level"`
	BMI              float64   `json:"bmi"`
	SmokingStatus    string    `gorm:"type:varchar(30)" json:"smoking_status"`
	PredictionResult int       `json:"prediction_result"`
	Probability      float64   `json:"probability"`
}

// PredictionStats — агрегированная статистика пользователя.
type PredictionStats struct {
	TotalPredictions int64      `json:"total_predictions"`
	AvgRisk          float64    `json:"avg_risk"`
	MaxRisk          float64    `json:"max_risk"`
	FirstPrediction  *time.Time `json:"first_prediction"`
}
