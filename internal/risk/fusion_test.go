package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuse_ManualRaisesOnly(t *testing.T) {
	// ручная оценка выше модели — среднее арифметическое
	assert.InDelta(t, 0.5, Fuse(0.3, 0.7), 1e-9)

	// ручная оценка ниже или равна — вероятность модели без изменений
	assert.Equal(t, 0.7, Fuse(0.7, 0.3))
	assert.Equal(t, 0.4, Fuse(0.4, 0.4))
}

func TestFuse_NeverLowers(t *testing.T) {
	for _, modelP := range []float64{0, 0.1, 0.3, 0.5, 0.9} {
		for _, manualP := range []float64{0, 0.2, 0.5, 0.95} {
			fused := Fuse(modelP, manualP)
			assert.GreaterOrEqual(t, fused, modelP, "model %v manual %v", modelP, manualP)
		}
	}
}

func TestDecide_Boundary(t *testing.T) {
	assert.Equal(t, 1, Decide(0.30))
	assert.Equal(t, 0, Decide(0.2999))
	assert.Equal(t, 1, Decide(0.9))
	assert.Equal(t, 0, Decide(0))
}
