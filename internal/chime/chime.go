// Package chime synthesizes the short feedback tones played during a quiz.
// No audio files are involved: each cue is a sequence of sine notes with a
// linear attack/release envelope, streamed straight to the speaker. Sound
// is best-effort throughout; every entry point is a no-op when disabled or
// when the speaker could not be opened.
package chime

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Envelope slopes. Long enough to avoid clicks at note edges, short
// enough to keep the cues snappy.
const (
	attackTime  = 8 * time.Millisecond
	releaseTime = 30 * time.Millisecond
)

// note is one tone in a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var (
	// Two-note rise, E6 to A6.
	correctCue = []note{
		{1318.51, 70 * time.Millisecond},
		{1760.00, 100 * time.Millisecond},
	}
	// Low B2 buzz.
	wrongCue = []note{
		{123.47, 200 * time.Millisecond},
	}
	// A major arpeggio for finishing the deck.
	finishCue = []note{
		{880.00, 90 * time.Millisecond},
		{1108.73, 90 * time.Millisecond},
		{1318.51, 140 * time.Millisecond},
	}
)

var speakerInitialized bool

// Player plays feedback cues. Construct with New; methods are meant to be
// called from the update loop.
type Player struct {
	enabled    bool
	volume     float64
	logger     *log.Logger
	initFailed bool
}

// New creates a player. The speaker is opened on first need, so a player
// that starts disabled costs nothing until sound is toggled on.
func New(enabled bool, volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	p := &Player{enabled: enabled, volume: volume, logger: logger}
	if enabled {
		p.ensureSpeaker()
	}
	return p
}

// Enabled reports whether cues currently play.
func (p *Player) Enabled() bool {
	return p.enabled && !p.initFailed
}

// Toggle flips sound on or off and reports the new state.
func (p *Player) Toggle() bool {
	p.enabled = !p.enabled
	if p.enabled {
		p.ensureSpeaker()
	}
	return p.Enabled()
}

// Correct plays the right-answer cue.
func (p *Player) Correct() {
	p.play(correctCue)
}

// Wrong plays the wrong-answer cue.
func (p *Player) Wrong() {
	p.play(wrongCue)
}

// Finish plays the deck-completion cue.
func (p *Player) Finish() {
	p.play(finishCue)
}

func (p *Player) ensureSpeaker() {
	if speakerInitialized || p.initFailed {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		p.initFailed = true
		p.logger.Warn("speaker unavailable, sound stays off", "err", err)
		return
	}
	speakerInitialized = true
	p.logger.Debug("speaker initialized", "sample_rate", sampleRate)
}

func (p *Player) play(notes []note) {
	if p == nil || !p.enabled || !speakerInitialized {
		return
	}

	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		streamers = append(streamers, newTone(n.freq, n.dur))
	}

	// Volume gain in beep is Base^Volume; log2 of the configured linear
	// volume cancels the Base 2 so the config value acts linearly.
	vol := &effects.Volume{
		Streamer: beep.Seq(streamers...),
		Base:     2,
		Volume:   math.Log2(p.volume),
		Silent:   p.volume <= 0,
	}
	speaker.Play(vol)
}

// tone streams one enveloped sine note.
type tone struct {
	freq    float64
	pos     int
	total   int
	attack  int
	release int
}

func newTone(freq float64, dur time.Duration) *tone {
	return &tone{
		freq:    freq,
		total:   sampleRate.N(dur),
		attack:  sampleRate.N(attackTime),
		release: sampleRate.N(releaseTime),
	}
}

// Stream implements beep.Streamer.
func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		v := math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(sampleRate)) * t.envelope()
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer.
func (t *tone) Err() error {
	return nil
}

func (t *tone) envelope() float64 {
	switch {
	case t.attack > 0 && t.pos < t.attack:
		return float64(t.pos) / float64(t.attack)
	case t.release > 0 && t.pos >= t.total-t.release:
		return float64(t.total-t.pos) / float64(t.release)
	default:
		return 1
	}
}
