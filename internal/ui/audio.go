package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCheck
	SoundPromote
	SoundInvalid
	SoundGameEnd
)

const sampleRate = 44100

// AudioManager plays short procedurally generated effects.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager. There can be only one per
// process because Ebitengine allows a single audio context.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: true,
		volume:  0.5,
	}
	am.generateSounds()
	return am
}

func (am *AudioManager) generateSounds() {
	am.sounds[SoundMove] = click(440, 0.08, 0.3)
	am.sounds[SoundCapture] = click(330, 0.12, 0.5)
	am.sounds[SoundCheck] = synth(0.15, 0.4, attackDecay(0.1), func(t float64) float64 {
		return math.Sin(2 * math.Pi * 880 * t)
	})
	am.sounds[SoundPromote] = concat(click(400, 0.06, 0.3), silence(0.05), click(520, 0.06, 0.3))
	am.sounds[SoundInvalid] = synth(0.1, 0.15, linearDecay, func(t float64) float64 {
		return math.Sin(2*math.Pi*150*t) + 0.3*math.Sin(4*math.Pi*150*t)
	})
	am.sounds[SoundGameEnd] = synth(0.4, 0.5, fadeInOut(0.1, 0.3), func(t float64) float64 {
		// C major triad
		return (math.Sin(2*math.Pi*261.63*t) + math.Sin(2*math.Pi*329.63*t) + math.Sin(2*math.Pi*392.00*t)) / 3
	})
}

// envelope maps progress through a sound (0 to 1) to a gain.
type envelope func(progress float64) float64

func linearDecay(p float64) float64 { return 1 - p }

func attackDecay(attack float64) envelope {
	return func(p float64) float64 {
		if p < attack {
			return p / attack
		}
		return 1 - (p-attack)/(1-attack)
	}
}

func fadeInOut(in, out float64) envelope {
	return func(p float64) float64 {
		switch {
		case p < in:
			return p / in
		case p > 1-out:
			return (1 - p) / out
		}
		return 1
	}
}

// synth renders wave through env as 16-bit little-endian stereo PCM.
func synth(duration, amplitude float64, env envelope, wave func(t float64) float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		putSample(data[i*4:], wave(t)*env(t/duration)*amplitude)
	}
	return data
}

// click is a percussive wooden tap with an exponential decay.
func click(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		putSample(data[i*4:], (math.Sin(2*math.Pi*freq*t)+noise)*math.Exp(-t*30)*amplitude)
	}
	return data
}

func silence(duration float64) []byte {
	return make([]byte, int(sampleRate*duration)*4)
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// putSample writes one clamped sample to both channels.
func putSample(dst []byte, v float64) {
	v = math.Max(-1, math.Min(1, v))
	s := int16(v * 32767)
	dst[0], dst[1] = byte(s), byte(s>>8)
	dst[2], dst[3] = byte(s), byte(s>>8)
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	// A new player per call lets effects overlap.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
