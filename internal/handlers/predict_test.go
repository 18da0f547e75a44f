package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rishii-05/stroke-prediction-project/internal/risk"
	"github.com/rishii-05/stroke-prediction-project/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClassifier struct {
	proba []float64
}

func (f *fixedClassifier) PredictProba(_ context.Context, _ risk.ScaledVector) ([]float64, error) {
	return f.proba, nil
}

func testScaler() *risk.Scaler {
	mean := make([]float64, len(risk.FieldOrder))
	scale := make([]float64, len(risk.FieldOrder))
	for i := range scale {
		scale[i] = 1
	}
	return &risk.Scaler{FeatureNames: risk.FieldOrder, Mean: mean, Scale: scale}
}

// Анонимный predict не трогает хранилище, поэтому репозиторий не нужен.
func newTestRouter(engine *risk.Engine) *gin.Engine {
	gin.SetMode(gin.TestMode)

	predictionService := service.NewPredictionService(engine, nil)
	handler := NewPredictionHandler(predictionService)

	router := gin.New()
	router.POST("/api/v1/predict", handler.Predict)
	router.GET("/api/v1/health", handler.Health)
	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func highRiskForm() map[string]string {
	return map[string]string{
		"gender":            "Male",
		"age":               "70",
		"hypertension":      "1",
		"heart_disease":     "1",
		"ever_married":      "Yes",
		"work_type":         "Private",
		"residence_type":    "Urban",
		"avg_glucose_level": "210",
		"bmi":               "32",
		"smoking_status":    "Smokes",
	}
}

func TestPredict_OK(t *testing.T) {
	engine := risk.NewEngine(testScaler(), &fixedClassifier{proba: []float64{0.6, 0.4}})
	router := newTestRouter(engine)

	w := performJSON(t, router, http.MethodPost, "/api/v1/predict", highRiskForm())
	require.Equal(t, http.StatusOK, w.Code)

	var assessment risk.Assessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assessment))

	assert.Equal(t, 1, assessment.Prediction)
	assert.Len(t, assessment.Reasons, 7)
	assert.NotEmpty(t, assessment.Recommendations)
}

func TestPredict_UnknownCategory(t *testing.T) {
	engine := risk.NewEngine(testScaler(), &fixedClassifier{proba: []float64{0.6, 0.4}})
	router := newTestRouter(engine)

	form := highRiskForm()
	form["work_type"] = "Retired"

	w := performJSON(t, router, http.MethodPost, "/api/v1/predict", form)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "work_type", resp["field"])
}

func TestPredict_MissingField(t *testing.T) {
	engine := risk.NewEngine(testScaler(), &fixedClassifier{proba: []float64{0.6, 0.4}})
	router := newTestRouter(engine)

	form := highRiskForm()
	delete(form, "age")

	w := performJSON(t, router, http.MethodPost, "/api/v1/predict", form)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "age", resp["field"])
	assert.Contains(t, resp["error"], "missing input")
}

func TestPredict_DegradedEngineReturnsSentinel(t *testing.T) {
	engine := risk.NewEngine(nil, nil)
	router := newTestRouter(engine)

	w := performJSON(t, router, http.MethodPost, "/api/v1/predict", highRiskForm())
	require.Equal(t, http.StatusOK, w.Code)

	var assessment risk.Assessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assessment))
	assert.Equal(t, -1, assessment.Prediction)
	assert.Zero(t, assessment.Probability)
}

func TestHealth(t *testing.T) {
	healthy := newTestRouter(risk.NewEngine(testScaler(), &fixedClassifier{proba: []float64{1, 0}}))
	w := httptest.NewRecorder()
	healthy.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	degraded := newTestRouter(risk.NewEngine(nil, nil))
	w = httptest.NewRecorder()
	degraded.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
