package risk

// DecisionThreshold — порог принятия решения по слитой вероятности.
// Намеренно ниже наивных 0.50: меньше пропущенных случаев высокого риска
// ценой большего числа ложных срабатываний.
const DecisionThreshold = 0.30

// Fuse сливает вероятность модели с ручной оценкой. Ручная оценка может
// только поднять итоговую вероятность, но никогда не опустить.
func Fuse(modelP, manualP float64) float64 {
	if manualP > modelP {
		return (modelP + manualP) / 2
	}
	return modelP
}

// Decide применяет порог к слитой вероятности.
func Decide(fusedP float64) int {
	if fusedP >= DecisionThreshold {
		return 1
	}
	return 0
}
