package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBMI(t *testing.T) {
	assert.InDelta(t, 24.69, BMI(180, 80), 0.01)
	assert.InDelta(t, 22.04, BMI(165, 60), 0.01)
	assert.Zero(t, BMI(0, 80))
	assert.Zero(t, BMI(180, 0))
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "", BMICategory(0))
	assert.Equal(t, "Underweight", BMICategory(18.4))
	assert.Equal(t, "Normal weight", BMICategory(18.5))
	assert.Equal(t, "Normal weight", BMICategory(24.9))
	assert.Equal(t, "Overweight", BMICategory(25))
	assert.Equal(t, "Obese", BMICategory(30))
}
