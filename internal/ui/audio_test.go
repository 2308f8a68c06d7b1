package ui

import "testing"

func TestSynthLength(t *testing.T) {
	data := synth(0.1, 0.5, linearDecay, func(float64) float64 { return 1 })
	if want := int(sampleRate*0.1) * 4; len(data) != want {
		t.Errorf("len = %d, want %d", len(data), want)
	}
}

func TestPutSampleClamps(t *testing.T) {
	buf := make([]byte, 4)
	putSample(buf, 3)
	if got := int16(uint16(buf[0]) | uint16(buf[1])<<8); got != 32767 {
		t.Errorf("left = %d, want 32767", got)
	}
	putSample(buf, -3)
	if got := int16(uint16(buf[2]) | uint16(buf[3])<<8); got != -32767 {
		t.Errorf("right = %d, want -32767", got)
	}
}

func TestEnvelopes(t *testing.T) {
	ad := attackDecay(0.1)
	if ad(0) != 0 || ad(0.1) != 1 || ad(1) != 0 {
		t.Errorf("attackDecay endpoints = %v %v %v", ad(0), ad(0.1), ad(1))
	}
	io := fadeInOut(0.1, 0.3)
	if io(0.5) != 1 || io(0) != 0 {
		t.Errorf("fadeInOut = %v at 0.5, %v at 0", io(0.5), io(0))
	}
}
