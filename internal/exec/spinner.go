package exec

var spinnerFrames = [...]string{"|", "/", "-", "\\"}

// SpinnerFrame returns the glyph shown while a session is starting.
func SpinnerFrame(i int) string {
	return spinnerFrames[i%len(spinnerFrames)]
}

// NextSpinnerIndex advances the frame counter, wrapping around.
func NextSpinnerIndex(i int) int {
	return (i + 1) % len(spinnerFrames)
}
