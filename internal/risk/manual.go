package risk

// Пороговые значения клинических факторов риска.
const (
	glucoseDiabetic    = 126.0
	glucoseSevere      = 200.0
	glucosePrediabetic = 100.0
	bmiOverweight      = 25.0
	bmiObese           = 30.0
	bmiSevereObese     = 35.0
)

// maxManualScore — ручная оценка никогда не сообщает полную уверенность.
const maxManualScore = 0.95

// ManualScore — детерминированная балльная оценка риска по сырым
// (не отмасштабированным) признакам. Независима от обученной модели и
// служит нижней границей чувствительности при занижении вероятности моделью.
// Все слагаемые независимы и аддитивны, возрастные интервалы взаимоисключающие.
func ManualScore(v Vector) float64 {
	score := agePoints(v.Age)

	if v.Hypertension == 1 {
		score += 0.25
	}
	if v.HeartDisease == 1 {
		score += 0.30
	}

	switch {
	case v.AvgGlucoseLevel >= glucoseSevere:
		score += 0.20
	case v.AvgGlucoseLevel >= glucoseDiabetic:
		score += 0.15
	case v.AvgGlucoseLevel >= glucosePrediabetic:
		score += 0.08
	}

	switch {
	case v.BMI >= bmiSevereObese:
		score += 0.15
	case v.BMI >= bmiObese:
		score += 0.10
	case v.BMI >= bmiOverweight:
		score += 0.05
	}

	switch v.SmokingStatus {
	case SmokingCurrent:
		score += 0.20
	case SmokingFormer:
		score += 0.08
	}

	if v.Gender == 1 {
		score += 0.05
	}

	// Бонус за сочетание факторов: несколько одновременных факторов риска
	// опаснее их простой суммы.
	switch factors := MajorRiskFactors(v); {
	case factors >= 3:
		score += 0.10
	case factors >= 2:
		score += 0.05
	}

	if score > maxManualScore {
		score = maxManualScore
	}
	return score
}

// agePoints — баллы за возрастной интервал (первый подходящий сверху).
func agePoints(age float64) float64 {
	switch {
	case age >= 75:
		return 0.35
	case age >= 65:
		return 0.25
	case age >= 55:
		return 0.15
	case age >= 45:
		return 0.08
	case age >= 35:
		return 0.03
	default:
		return 0.01
	}
}

// MajorRiskFactors считает число основных факторов риска: гипертония,
// болезнь сердца, глюкоза >= 126, ИМТ >= 30, активное курение, возраст >= 55.
func MajorRiskFactors(v Vector) int {
	count := 0
	if v.Hypertension == 1 {
		count++
	}
	if v.HeartDisease == 1 {
		count++
	}
	if v.AvgGlucoseLevel >= glucoseDiabetic {
		count++
	}
	if v.BMI >= bmiObese {
		count++
	}
	if v.SmokingStatus == SmokingCurrent {
		count++
	}
	if v.Age >= 55 {
		count++
	}
	return count
}
