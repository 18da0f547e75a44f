package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lowRiskVector() Vector {
	return Vector{
		Gender:          0,
		Age:             25,
		Hypertension:    0,
		HeartDisease:    0,
		EverMarried:     0,
		WorkType:        1,
		ResidenceType:   1,
		AvgGlucoseLevel: 85,
		BMI:             22,
		SmokingStatus:   SmokingNever,
	}
}

func highRiskVector() Vector {
	return Vector{
		Gender:          1,
		Age:             70,
		Hypertension:    1,
		HeartDisease:    1,
		EverMarried:     1,
		WorkType:        1,
		ResidenceType:   1,
		AvgGlucoseLevel: 210,
		BMI:             32,
		SmokingStatus:   SmokingCurrent,
	}
}

func TestManualScore_LowRiskScenario(t *testing.T) {
	score := ManualScore(lowRiskVector())

	assert.GreaterOrEqual(t, score, 0.01)
	assert.LessOrEqual(t, score, 0.06)
}

func TestManualScore_HighRiskScenario(t *testing.T) {
	// 0.25 (возраст 70) + 0.25 (гипертония) + 0.30 (сердце) + 0.20 (глюкоза 210)
	// + 0.10 (ИМТ 32) + 0.20 (курение) + 0.05 (пол) + 0.10 (сочетание факторов)
	// = 1.45, ограничено 0.95
	score := ManualScore(highRiskVector())

	assert.GreaterOrEqual(t, score, 0.85)
	assert.Equal(t, 0.95, score)
}

func TestManualScore_Bounds(t *testing.T) {
	vectors := []Vector{
		lowRiskVector(),
		highRiskVector(),
		{},
		{Age: 120, Hypertension: 1, HeartDisease: 1, AvgGlucoseLevel: 500, BMI: 60, SmokingStatus: SmokingCurrent, Gender: 1},
	}

	for _, v := range vectors {
		score := ManualScore(v)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 0.95)
	}
}

func TestManualScore_AgeBrackets(t *testing.T) {
	base := lowRiskVector()

	cases := []struct {
		age  float64
		want float64
	}{
		{80, 0.35},
		{75, 0.35},
		{70, 0.25},
		{60, 0.15},
		{50, 0.08},
		{40, 0.03},
		{25, 0.01},
	}

	// без других факторов оценка равна возрастным баллам: возраст >= 55 дает
	// один основной фактор, бонус за сочетание еще не срабатывает
	for _, tc := range cases {
		v := base
		v.Age = tc.age
		assert.InDelta(t, tc.want, ManualScore(v), 1e-9, "age %v", tc.age)
	}
}

func TestManualScore_MonotoneInAge(t *testing.T) {
	v := lowRiskVector()
	prev := ManualScore(v)

	for _, age := range []float64{35, 45, 55, 65, 75, 90} {
		v.Age = age
		score := ManualScore(v)
		assert.GreaterOrEqual(t, score, prev, "age %v", age)
		prev = score
	}
}

func TestManualScore_MonotoneInBinaryFactors(t *testing.T) {
	v := lowRiskVector()
	base := ManualScore(v)

	withHypertension := v
	withHypertension.Hypertension = 1
	assert.Greater(t, ManualScore(withHypertension), base)

	withHeartDisease := v
	withHeartDisease.HeartDisease = 1
	assert.Greater(t, ManualScore(withHeartDisease), base)
}

func TestManualScore_MonotoneInGlucoseAndBMI(t *testing.T) {
	v := lowRiskVector()

	prev := ManualScore(v)
	for _, glucose := range []float64{100, 126, 200, 300} {
		v.AvgGlucoseLevel = glucose
		score := ManualScore(v)
		assert.GreaterOrEqual(t, score, prev, "glucose %v", glucose)
		prev = score
	}

	v = lowRiskVector()
	prev = ManualScore(v)
	for _, bmi := range []float64{25, 30, 35, 50} {
		v.BMI = bmi
		score := ManualScore(v)
		assert.GreaterOrEqual(t, score, prev, "bmi %v", bmi)
		prev = score
	}
}

func TestManualScore_CompoundBonus(t *testing.T) {
	// два основных фактора: +0.05, три: +0.10
	v := lowRiskVector()
	v.Hypertension = 1
	v.HeartDisease = 1
	two := ManualScore(v)
	// 0.01 + 0.25 + 0.30 + 0.05
	assert.InDelta(t, 0.61, two, 1e-9)

	v.AvgGlucoseLevel = 130
	three := ManualScore(v)
	// 0.01 + 0.25 + 0.30 + 0.15 + 0.10
	assert.InDelta(t, 0.81, three, 1e-9)
}

func TestMajorRiskFactors(t *testing.T) {
	assert.Equal(t, 0, MajorRiskFactors(lowRiskVector()))
	assert.Equal(t, 6, MajorRiskFactors(highRiskVector()))

	v := lowRiskVector()
	v.Age = 55
	assert.Equal(t, 1, MajorRiskFactors(v))
}
