// Package metrics computes typing speed and accuracy figures.
package metrics

// standardWordLength is the character count counted as one word for WPM.
const standardWordLength = 5.0

// MinElapsedSeconds is the smallest time base the rate math accepts.
const MinElapsedSeconds = 0.01

// Compute returns gross WPM, net WPM, and accuracy for raw keystroke
// counts. Net WPM subtracts one word per error per minute and never goes
// negative; accuracy is 100 when nothing was typed yet.
func Compute(correctChars, typedChars int, elapsedSeconds float64) (grossWPM, netWPM, accuracy float64) {
	if typedChars == 0 {
		return 0, 0, 100
	}
	accuracy = float64(correctChars) / float64(typedChars) * 100
	if elapsedSeconds < MinElapsedSeconds {
		return 0, 0, accuracy
	}
	minutes := elapsedSeconds / 60
	grossWPM = (float64(typedChars) / standardWordLength) / minutes
	errorCount := typedChars - correctChars
	if errorCount < 0 {
		errorCount = 0
	}
	netWPM = grossWPM - float64(errorCount)/minutes
	if netWPM < 0 {
		netWPM = 0
	}
	return grossWPM, netWPM, accuracy
}
