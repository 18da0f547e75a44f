package risk

import (
	"log/slog"
	"strconv"
	"strings"
)

// Имена полей входной формы в порядке обучения модели.
// Порядок менять нельзя: scaler и классификатор обучены именно на нем.
const (
	FieldGender          = "gender"
	FieldAge             = "age"
	FieldHypertension    = "hypertension"
	FieldHeartDisease    = "heart_disease"
	FieldEverMarried     = "ever_married"
	FieldWorkType        = "work_type"
	FieldResidenceType   = "residence_type"
	FieldAvgGlucoseLevel = "avg_glucose_level"
	FieldBMI             = "bmi"
	FieldSmokingStatus   = "smoking_status"
)

// FieldOrder — канонический порядок 10 признаков.
var FieldOrder = []string{
	FieldGender,
	FieldAge,
	FieldHypertension,
	FieldHeartDisease,
	FieldEverMarried,
	FieldWorkType,
	FieldResidenceType,
	FieldAvgGlucoseLevel,
	FieldBMI,
	FieldSmokingStatus,
}

// DefaultBMI — среднее по обучающей выборке, подставляется при пустом bmi.
const DefaultBMI = 28.89

// Коды курения.
const (
	SmokingUnknown = 0
	SmokingFormer  = 1
	SmokingNever   = 2
	SmokingCurrent = 3
)

// categoryTables — таблицы кодирования меток (те же, что на этапе обучения).
var categoryTables = map[string]map[string]int{
	FieldGender: {
		"Female": 0,
		"Male":   1,
	},
	FieldEverMarried: {
		"No":  0,
		"Yes": 1,
	},
	FieldWorkType: {
		"Govt Job":      0,
		"Private":       1,
		"Self-employed": 2,
		"Children":      3,
	},
	FieldResidenceType: {
		"Rural": 0,
		"Urban": 1,
	},
	FieldSmokingStatus: {
		"Unknown":         0,
		"Formerly Smoked": 1,
		"Never Smoked":    2,
		"Smokes":          3,
		// метка из истории предсказаний кодируется так же, как и "Smokes"
		"Currently Smokes": 3,
	},
}

// Метки для денормализованной записи истории.
var genderLabels = map[int]string{0: "Female", 1: "Male"}
var smokingLabels = map[int]string{
	SmokingUnknown: "Unknown",
	SmokingFormer:  "Formerly Smoked",
	SmokingNever:   "Never Smoked",
	SmokingCurrent: "Currently Smokes",
}

// Vector — упорядоченный вектор из 10 признаков.
type Vector struct {
	Gender          float64
	Age             float64
	Hypertension    float64
	HeartDisease    float64
	EverMarried     float64
	WorkType        float64
	ResidenceType   float64
	AvgGlucoseLevel float64
	BMI             float64
	SmokingStatus   float64
}

// Row возвращает значения в каноническом порядке FieldOrder.
// Единственное место, где порядок признаков зафиксирован в коде.
func (v Vector) Row() []float64 {
	return []float64{
		v.Gender,
		v.Age,
		v.Hypertension,
		v.HeartDisease,
		v.EverMarried,
		v.WorkType,
		v.ResidenceType,
		v.AvgGlucoseLevel,
		v.BMI,
		v.SmokingStatus,
	}
}

// GenderLabel возвращает текстовую метку пола для записи в историю.
func (v Vector) GenderLabel() string {
	if label, ok := genderLabels[int(v.Gender)]; ok {
		return label
	}
	return "Unknown"
}

// SmokingLabel возвращает текстовую метку статуса курения для записи в историю.
func (v Vector) SmokingLabel() string {
	if label, ok := smokingLabels[int(v.SmokingStatus)]; ok {
		return label
	}
	return "Unknown"
}

// EncodeField кодирует одно поле формы в числовое значение.
func EncodeField(field, raw string) (float64, error) {
	table, categorical := categoryTables[field]
	if !categorical {
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return 0, &InvalidInputError{Field: field, Value: raw}
		}
		return value, nil
	}

	trimmed := strings.TrimSpace(raw)

	// Уже закодированное значение возвращается как есть. Диапазон кода
	// намеренно не проверяется (коды вне домена принимаются молча).
	if isDigits(trimmed) {
		code, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, &InvalidInputError{Field: field, Value: raw}
		}
		return float64(code), nil
	}

	code, ok := table[trimmed]
	if !ok {
		return 0, &UnknownCategoryError{Field: field, Value: raw}
	}
	return float64(code), nil
}

// BuildVector собирает вектор признаков из значений формы.
// Ошибки полей обнаруживаются жадно: возвращается первая по порядку FieldOrder.
func BuildVector(form map[string]string) (Vector, error) {
	values := make([]float64, 0, len(FieldOrder))

	for _, field := range FieldOrder {
		raw, ok := form[field]

		// bmi при отсутствии заменяется средним по выборке — это политика
		// заполнения пропусков, а не ошибка валидации
		if field == FieldBMI && (!ok || strings.TrimSpace(raw) == "") {
			slog.Info("BMI is missing, substituting training-set mean",
				"default", DefaultBMI,
			)
			values = append(values, DefaultBMI)
			continue
		}

		if !ok {
			return Vector{}, &MissingFieldError{Field: field}
		}

		value, err := EncodeField(field, raw)
		if err != nil {
			return Vector{}, err
		}
		values = append(values, value)
	}

	v := Vector{
		Gender:          values[0],
		Age:             values[1],
		Hypertension:    values[2],
		HeartDisease:    values[3],
		EverMarried:     values[4],
		WorkType:        values[5],
		ResidenceType:   values[6],
		AvgGlucoseLevel: values[7],
		BMI:             values[8],
		SmokingStatus:   values[9],
	}

	slog.Info("Feature vector encoded", "vector", v.Row())
	return v, nil
}

// isDigits проверяет, что строка непуста и состоит только из цифр.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
