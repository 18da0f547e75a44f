package risk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReasons_AlwaysSevenInOrder(t *testing.T) {
	for _, v := range []Vector{lowRiskVector(), highRiskVector(), {}} {
		reasons := Reasons(v, 0.1)
		require.Len(t, reasons, 7)
	}

	// порядок фиксирован: баннер, возраст, гипертония, сердце, глюкоза, ИМТ, курение
	reasons := Reasons(highRiskVector(), 0.7)
	assert.Contains(t, reasons[0], "HIGH RISK")
	assert.Contains(t, reasons[1], "Age 70")
	assert.Contains(t, reasons[2], "Hypertension present")
	assert.Contains(t, reasons[3], "Heart disease present")
	assert.Contains(t, reasons[4], "glucose 210.0")
	assert.Contains(t, reasons[5], "BMI 32.0")
	assert.Contains(t, reasons[6], "Current smoker")
}

func TestReasons_BannerBands(t *testing.T) {
	low := lowRiskVector()

	assert.Contains(t, Reasons(low, 0.65)[0], "HIGH RISK")
	assert.Contains(t, Reasons(low, 0.45)[0], "MODERATE RISK")
	assert.Contains(t, Reasons(low, 0.10)[0], "LOW RISK")

	// низкая вероятность, но есть отдельный фактор риска
	withFactor := low
	withFactor.Hypertension = 1
	assert.Contains(t, Reasons(withFactor, 0.10)[0], "LOW-MODERATE RISK")
}

func TestReasons_GlucoseBands(t *testing.T) {
	v := lowRiskVector()

	cases := []struct {
		glucose float64
		want    string
	}{
		{210, "severely elevated"},
		{150, "diabetic range"},
		{110, "pre-diabetic range"},
		{85, "normal range"},
	}

	for _, tc := range cases {
		v.AvgGlucoseLevel = tc.glucose
		assert.Contains(t, Reasons(v, 0.1)[4], tc.want, "glucose %v", tc.glucose)
	}
}

func TestReasons_SmokingStatements(t *testing.T) {
	v := lowRiskVector()

	cases := []struct {
		status float64
		want   string
	}{
		{SmokingCurrent, "Current smoker"},
		{SmokingFormer, "Former smoker"},
		{SmokingNever, "Never smoked"},
		{SmokingUnknown, "unknown"},
	}

	for _, tc := range cases {
		v.SmokingStatus = tc.status
		got := Reasons(v, 0.1)[6]
		assert.True(t, strings.Contains(got, tc.want), "status %v: %q", tc.status, got)
	}
}
