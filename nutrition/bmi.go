package nutrition

// BMI computes body mass index from height in centimeters and weight in
// kilograms. Returns 0 for non-positive inputs; validation of biometrics
// happens before this is called.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	h := heightCm / 100.0
	return weightKg / (h * h)
}

// BMICategory buckets a BMI value per the WHO adult classification.
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}
