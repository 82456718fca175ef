// Package measure implements the cardiothoracic ratio screening measurement
// and its teaching overlay.
package measure

// CalculateCTR returns the cardiothoracic ratio as a percentage. A zero
// chest width returns 0 instead of failing; there is no meaningful ratio
// without a chest measurement.
func CalculateCTR(heartWidth, chestWidth float64) float64 {
	if chestWidth == 0 {
		return 0
	}
	return heartWidth / chestWidth * 100
}

// CategorizeCTR maps a ratio percentage onto the conventional screening
// bands. Boundaries are inclusive on the high side of each band: a ratio of
// exactly 50 is already Borderline.
func CategorizeCTR(ctr float64) string {
	switch {
	case ctr < 50:
		return "Normal"
	case ctr < 55:
		return "Borderline"
	case ctr < 60:
		return "Mild cardiomegaly"
	case ctr < 70:
		return "Moderate cardiomegaly"
	default:
		return "Severe cardiomegaly"
	}
}
