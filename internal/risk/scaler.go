package risk

import (
	"encoding/json"
	"fmt"
	"os"
)

// ScaledVector — вектор признаков после StandardScaler.
type ScaledVector []float64

// Scaler применяет параметры StandardScaler, экспортированные при обучении
// (scaler.mean_ и scaler.scale_) в JSON артефакт.
type Scaler struct {
	FeatureNames []string  `json:"feature_names"`
	Mean         []float64 `json:"mean"`
	Scale        []float64 `json:"scale"`
}

// LoadScaler загружает параметры скейлера из JSON файла и проверяет,
// что порядок колонок совпадает с каноническим порядком признаков.
// Тихая перестановка колонок дала бы правдоподобную, но неверную вероятность,
// поэтому несовпадение порядка — фатальная ошибка загрузки.
func LoadScaler(path string) (*Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scaler artifact: %w", err)
	}

	var s Scaler
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scaler artifact: %w", err)
	}

	if len(s.Mean) != len(FieldOrder) || len(s.Scale) != len(FieldOrder) {
		return nil, fmt.Errorf("scaler artifact has %d/%d parameters, want %d",
			len(s.Mean), len(s.Scale), len(FieldOrder))
	}

	if len(s.FeatureNames) != len(FieldOrder) {
		return nil, fmt.Errorf("scaler artifact has %d feature names, want %d",
			len(s.FeatureNames), len(FieldOrder))
	}
	for i, name := range s.FeatureNames {
		if name != FieldOrder[i] {
			return nil, fmt.Errorf("scaler feature order mismatch at %d: artifact %q, expected %q",
				i, name, FieldOrder[i])
		}
	}

	for i, scale := range s.Scale {
		if scale == 0 {
			return nil, fmt.Errorf("scaler has zero scale for feature %q", s.FeatureNames[i])
		}
	}

	return &s, nil
}

// Transform применяет стандартизацию (x - mean) / scale к вектору признаков.
func (s *Scaler) Transform(v Vector) ScaledVector {
	row := v.Row()
	scaled := make(ScaledVector, len(row))
	for i, value := range row {
		scaled[i] = (value - s.Mean[i]) / s.Scale[i]
	}
	return scaled
}
