package risk

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() map[string]string {
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

func TestEncodeField_CategoricalLabels(t *testing.T) {
	cases := []struct {
		field string
		raw   string
		want  float64
	}{
		{FieldGender, "Female", 0},
		{FieldGender, "Male", 1},
		{FieldEverMarried, "No", 0},
		{FieldEverMarried, "Yes", 1},
		{FieldWorkType, "Govt Job", 0},
		{FieldWorkType, "Private", 1},
		{FieldWorkType, "Self-employed", 2},
		{FieldWorkType, "Children", 3},
		{FieldResidenceType, "Rural", 0},
		{FieldResidenceType, "Urban", 1},
		{FieldSmokingStatus, "Unknown", 0},
		{FieldSmokingStatus, "Formerly Smoked", 1},
		{FieldSmokingStatus, "Never Smoked", 2},
		{FieldSmokingStatus, "Smokes", 3},
		{FieldSmokingStatus, "Currently Smokes", 3},
	}

	for _, tc := range cases {
		t.Run(tc.field+"/"+tc.raw, func(t *testing.T) {
			got, err := EncodeField(tc.field, tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeField_Idempotence(t *testing.T) {
	// Кодирование уже закодированного значения возвращает его без изменений
	labels := map[string][]string{
		FieldGender:        {"Female", "Male"},
		FieldEverMarried:   {"No", "Yes"},
		FieldWorkType:      {"Govt Job", "Private", "Self-employed", "Children"},
		FieldResidenceType: {"Rural", "Urban"},
		FieldSmokingStatus: {"Unknown", "Formerly Smoked", "Never Smoked", "Smokes"},
	}

	for field, values := range labels {
		for _, label := range values {
			first, err := EncodeField(field, label)
			require.NoError(t, err)

			second, err := EncodeField(field, strconv.Itoa(int(first)))
			require.NoError(t, err)
			assert.Equal(t, first, second, "field %s label %s", field, label)
		}
	}
}

func TestEncodeField_NumericCodePassthrough(t *testing.T) {
	// Числовые коды вне домена категории принимаются молча —
	// задокументированная вольность кодирования, а не баг
	got, err := EncodeField(FieldSmokingStatus, "9")
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)
}

func TestEncodeField_UnknownCategory(t *testing.T) {
	_, err := EncodeField(FieldWorkType, "Retired")

	var unknownErr *UnknownCategoryError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, FieldWorkType, unknownErr.Field)
}

func TestEncodeField_InvalidNumeric(t *testing.T) {
	_, err := EncodeField(FieldAge, "seventy")

	var invalidErr *InvalidInputError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, FieldAge, invalidErr.Field)
}

func TestBuildVector_Order(t *testing.T) {
	form := map[string]string{
		"gender":            "Male",
		"age":               "70",
		"hypertension":      "1",
		"heart_disease":     "0",
		"ever_married":      "Yes",
		"work_type":         "Self-employed",
		"residence_type":    "Rural",
		"avg_glucose_level": "150.5",
		"bmi":               "31.2",
		"smoking_status":    "Formerly Smoked",
	}

	v, err := BuildVector(form)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 70, 1, 0, 1, 2, 0, 150.5, 31.2, 1}, v.Row())
}

func TestBuildVector_MissingField(t *testing.T) {
	form := validForm()
	delete(form, "work_type")

	_, err := BuildVector(form)

	var missingErr *MissingFieldError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, FieldWorkType, missingErr.Field)
}

func TestBuildVector_BMIDefault(t *testing.T) {
	withDefault := validForm()
	delete(withDefault, "bmi")

	blank := validForm()
	blank["bmi"] = ""

	explicit := validForm()
	explicit["bmi"] = fmt.Sprintf("%v", DefaultBMI)

	vMissing, err := BuildVector(withDefault)
	require.NoError(t, err)
	vBlank, err := BuildVector(blank)
	require.NoError(t, err)
	vExplicit, err := BuildVector(explicit)
	require.NoError(t, err)

	assert.Equal(t, DefaultBMI, vMissing.BMI)
	assert.Equal(t, vExplicit, vMissing)
	assert.Equal(t, vExplicit, vBlank)
}

func TestBuildVector_FirstErrorWins(t *testing.T) {
	// При нескольких некорректных полях возвращается первое по порядку признаков
	form := validForm()
	form["age"] = "old"
	form["bmi"] = "heavy"

	_, err := BuildVector(form)

	var invalidErr *InvalidInputError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, FieldAge, invalidErr.Field)
}

func TestVector_Labels(t *testing.T) {
	v := Vector{Gender: 1, SmokingStatus: 3}
	assert.Equal(t, "Male", v.GenderLabel())
	assert.Equal(t, "Currently Smokes", v.SmokingLabel())

	outOfRange := Vector{Gender: 9, SmokingStatus: 9}
	assert.Equal(t, "Unknown", outOfRange.GenderLabel())
	assert.Equal(t, "Unknown", outOfRange.SmokingLabel())
}
