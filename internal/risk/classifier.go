package risk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Classifier — обученный бинарный классификатор инсульта.
// Черный ящик: только вероятности классов, без повторов и запасной модели.
type Classifier interface {
	// PredictProba возвращает [p_class0, p_class1] для отмасштабированного вектора.
	PredictProba(ctx context.Context, row ScaledVector) ([]float64, error)
}

// HTTPClassifier обращается к model-сервису, в котором загружен
// сериализованный артефакт модели (stroke_model.pkl).
type HTTPClassifier struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClassifier создает клиента model-сервиса.
func NewHTTPClassifier(baseURL string, timeout time.Duration) *HTTPClassifier {
	return &HTTPClassifier{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type predictProbaRequest struct {
	Features []float64 `json:"features"`
}

type predictProbaResponse struct {
	Probabilities []float64 `json:"probabilities"`
}

// PredictProba отправляет отмасштабированный вектор в model-сервис.
func (c *HTTPClassifier) PredictProba(ctx context.Context, row ScaledVector) ([]float64, error) {
	requestBody, err := json.Marshal(predictProbaRequest{Features: row})
	if err != nil {
		return nil, fmt.Errorf("marshal predict request: %w", err)
	}

	url := fmt.Sprintf("%s/predict_proba", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("create predict request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call model service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("model service returned %d: %s", resp.StatusCode, string(body))
	}

	var probaResp predictProbaResponse
	if err := json.NewDecoder(resp.Body).Decode(&probaResp); err != nil {
		return nil, fmt.Errorf("decode model response: %w", err)
	}

	if len(probaResp.Probabilities) != 2 {
		return nil, fmt.Errorf("model returned %d probabilities, want 2", len(probaResp.Probabilities))
	}

	return probaResp.Probabilities, nil
}

// Health проверяет доступность model-сервиса при старте процесса.
func (c *HTTPClassifier) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/health", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create health request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("model service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model service health returned %d", resp.StatusCode)
	}
	return nil
}
