package risk

// recommendationBlock возвращает рекомендации своего блока или nil,
// если блок не применим.
type recommendationBlock func(v Vector, fusedP float64) []string

// recommendationBlocks — упорядоченная таблица блоков рекомендаций.
// Блоки добавляются в фиксированном порядке, внутри блока порядок тоже фиксирован.
var recommendationBlocks = []recommendationBlock{
	urgentConsultBlock,
	hypertensionBlock,
	heartDiseaseBlock,
	glucoseBlock,
	bmiBlock,
	smokingBlock,
	ageBlock,
	lifestyleBlock,
	lowRiskBlock,
}

// Recommendations строит упорядоченный список рекомендаций по сырым
// признакам и итоговой вероятности.
func Recommendations(v Vector, fusedP float64) []string {
	recs := make([]string, 0, 12)
	for _, block := range recommendationBlocks {
		recs = append(recs, block(v, fusedP)...)
	}

	// Защитный инвариант: блок низкого риска делает пустой результат
	// недостижимым, но пустой ответ пользователю недопустим.
	if len(recs) == 0 {
		recs = append(recs,
			"Maintain a balanced diet and regular physical activity.",
			"Schedule routine health check-ups to keep track of your risk factors.",
		)
	}
	return recs
}

func urgentConsultBlock(v Vector, fusedP float64) []string {
	if fusedP >= 0.5 || MajorRiskFactors(v) > 0 {
		return []string{
			"Schedule a consultation with a healthcare provider to review your stroke risk in detail.",
		}
	}
	return nil
}

func hypertensionBlock(v Vector, _ float64) []string {
	if v.Hypertension != 1 {
		return nil
	}
	return []string{
		"Monitor your blood pressure regularly and take antihypertensive medication as prescribed.",
		"Reduce sodium intake and limit alcohol to help control blood pressure.",
	}
}

func heartDiseaseBlock(v Vector, _ float64) []string {
	if v.HeartDisease != 1 {
		return nil
	}
	return []string{
		"Keep regular follow-ups with your cardiologist and adhere to your cardiac treatment plan.",
	}
}

func glucoseBlock(v Vector, _ float64) []string {
	switch {
	case v.AvgGlucoseLevel >= glucoseDiabetic:
		return []string{
			"Work with your doctor on a diabetes management plan: glucose control strongly reduces stroke risk.",
			"Limit refined sugars and monitor your blood glucose regularly.",
		}
	case v.AvgGlucoseLevel >= glucosePrediabetic:
		return []string{
			"Your glucose is in the pre-diabetic range: reduce sugar intake and recheck within 3-6 months.",
		}
	default:
		return nil
	}
}

func bmiBlock(v Vector, _ float64) []string {
	switch {
	case v.BMI >= bmiObese:
		return []string{
			"Aim for gradual weight loss through diet and exercise: obesity is a major modifiable risk factor.",
		}
	case v.BMI >= bmiOverweight:
		return []string{
			"Work towards a healthy weight: even a 5% reduction measurably lowers stroke risk.",
		}
	default:
		return nil
	}
}

func smokingBlock(v Vector, _ float64) []string {
	switch v.SmokingStatus {
	case SmokingCurrent:
		return []string{
			"Quit smoking: cessation is the single most effective step to lower your stroke risk.",
			"Ask your doctor about smoking cessation programs and nicotine replacement therapy.",
		}
	case SmokingFormer:
		return []string{
			"Stay smoke-free: your stroke risk keeps decreasing the longer you abstain.",
		}
	default:
		return nil
	}
}

func ageBlock(v Vector, _ float64) []string {
	switch {
	case v.Age >= 60:
		return []string{
			"Have regular check-ups including blood pressure, glucose and cholesterol: age-related risk needs closer monitoring.",
		}
	case v.Age >= 45:
		return []string{
			"Include stroke risk screening in your periodic health examinations.",
		}
	case MajorRiskFactors(v) > 0:
		return []string{
			"Address your risk factors now: managing them at a younger age pays off the most.",
		}
	default:
		return nil
	}
}

func lifestyleBlock(v Vector, fusedP float64) []string {
	if MajorRiskFactors(v) == 0 && fusedP < DecisionThreshold {
		return nil
	}
	return []string{
		"Get at least 150 minutes of moderate exercise per week.",
		"Follow a diet rich in vegetables, fruits and whole grains, and low in saturated fat.",
	}
}

func lowRiskBlock(v Vector, fusedP float64) []string {
	if fusedP >= DecisionThreshold || MajorRiskFactors(v) > 0 {
		return nil
	}
	return []string{
		"Keep up your healthy habits: your current stroke risk profile is low.",
		"Recheck your risk once a year or after significant health changes.",
	}
}
