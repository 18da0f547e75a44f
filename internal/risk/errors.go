package risk

import (
	"errors"
	"fmt"
)

// Ошибки артефактов фиксируются на старте процесса и не переповторяются
// на каждый запрос.
var (
	ErrScalerUnavailable = errors.New("scaler is not loaded")
	ErrModelUnavailable  = errors.New("model is not loaded")
)

// MissingFieldError — обязательное поле отсутствует во входной форме.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing input: %s", e.Field)
}

// InvalidInputError — числовое поле содержит нечисловое значение.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for %s: %q is not numeric", e.Field, e.Value)
}

// UnknownCategoryError — категориальная метка не найдена в таблице кодирования
// и не является числовым кодом.
type UnknownCategoryError struct {
	Field string
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("invalid input for %s: unknown category %q", e.Field, e.Value)
}

// PredictionError оборачивает любую неожиданную ошибку во время скоринга.
type PredictionError struct {
	Err error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("prediction failed: %v", e.Err)
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}
