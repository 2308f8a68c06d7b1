package ui

// UIScale is the global HiDPI scale factor for all UI drawing.
// Set by Game.Layout() and used by widgets and modals.
var UIScale float64 = 1.0

// Layout values are in logical pixels; these convert them to screen pixels.

func scaleF(v int) float32 {
	return float32(float64(v) * UIScale)
}

func scaleD(v int) float64 {
	return float64(v) * UIScale
}

func scaleI(v int) int {
	return int(float64(v) * UIScale)
}
