package risk

import "fmt"

// reasonRule всегда возвращает одно утверждение для своего фактора.
type reasonRule func(v Vector, fusedP float64) string

// reasonRules — упорядоченная таблица правил объяснения. Каждое правило
// вычисляется независимо, в ответе всегда ровно 7 утверждений в этом порядке.
var reasonRules = []reasonRule{
	riskBanner,
	ageReason,
	hypertensionReason,
	heartDiseaseReason,
	glucoseReason,
	bmiReason,
	smokingReason,
}

// Reasons строит упорядоченный список объяснений по сырым признакам
// и итоговой вероятности.
func Reasons(v Vector, fusedP float64) []string {
	reasons := make([]string, 0, len(reasonRules))
	for _, rule := range reasonRules {
		reasons = append(reasons, rule(v, fusedP))
	}
	return reasons
}

func riskBanner(v Vector, fusedP float64) string {
	switch {
	case fusedP >= 0.6:
		return "⚠️ HIGH RISK: your estimated stroke probability is high. Please consult a healthcare professional as soon as possible."
	case fusedP >= DecisionThreshold:
		return "⚠️ MODERATE RISK: your estimated stroke probability is elevated. A medical check-up is strongly recommended."
	case MajorRiskFactors(v) > 0:
		return "LOW-MODERATE RISK: your overall probability is low, but individual risk factors are present and worth addressing."
	default:
		return "✅ LOW RISK: no significant stroke risk factors were detected."
	}
}

func ageReason(v Vector, _ float64) string {
	switch {
	case v.Age >= 60:
		return fmt.Sprintf("Age %.0f: stroke risk rises significantly after 60.", v.Age)
	case v.Age >= 45:
		return fmt.Sprintf("Age %.0f: stroke risk begins to increase after 45.", v.Age)
	default:
		return fmt.Sprintf("Age %.0f: your age group has a low baseline stroke risk.", v.Age)
	}
}

func hypertensionReason(v Vector, _ float64) string {
	if v.Hypertension == 1 {
		return "Hypertension present: high blood pressure is the leading treatable cause of stroke."
	}
	return "No hypertension reported."
}

func heartDiseaseReason(v Vector, _ float64) string {
	if v.HeartDisease == 1 {
		return "Heart disease present: cardiac conditions substantially raise stroke risk."
	}
	return "No heart disease reported."
}

func glucoseReason(v Vector, _ float64) string {
	glucose := v.AvgGlucoseLevel
	switch {
	case glucose >= glucoseSevere:
		return fmt.Sprintf("Average glucose %.1f mg/dL: severely elevated, consistent with uncontrolled diabetes.", glucose)
	case glucose >= glucoseDiabetic:
		return fmt.Sprintf("Average glucose %.1f mg/dL: in the diabetic range.", glucose)
	case glucose >= glucosePrediabetic:
		return fmt.Sprintf("Average glucose %.1f mg/dL: in the pre-diabetic range.", glucose)
	default:
		return fmt.Sprintf("Average glucose %.1f mg/dL: within the normal range.", glucose)
	}
}

func bmiReason(v Vector, _ float64) string {
	switch {
	case v.BMI >= bmiSevereObese:
		return fmt.Sprintf("BMI %.1f: severe obesity, a major stroke risk factor.", v.BMI)
	case v.BMI >= bmiObese:
		return fmt.Sprintf("BMI %.1f: in the obese range.", v.BMI)
	case v.BMI >= bmiOverweight:
		return fmt.Sprintf("BMI %.1f: in the overweight range.", v.BMI)
	default:
		return fmt.Sprintf("BMI %.1f: within the healthy range.", v.BMI)
	}
}

func smokingReason(v Vector, _ float64) string {
	switch v.SmokingStatus {
	case SmokingCurrent:
		return "Current smoker: smoking roughly doubles the risk of stroke."
	case SmokingFormer:
		return "Former smoker: residual risk remains but declines over time after quitting."
	case SmokingNever:
		return "Never smoked: no smoking-related stroke risk."
	default:
		return "Smoking status unknown: smoking history could not be factored in."
	}
}
