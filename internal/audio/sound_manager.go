// Package audio plays short synthesized cues for arena events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/queuecommander/arena/pkg/core"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Output is the audio device cues are played on
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	// Lock and Unlock guard streamers the device is currently playing
	Lock()
	Unlock()
	Close()
}

// speakerOutput plays through the system speaker
type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

func (speakerOutput) Lock() { speaker.Lock() }

func (speakerOutput) Unlock() { speaker.Unlock() }

func (speakerOutput) Close() { speaker.Close() }

// SoundManager manages all game audio. Every Play call is a no-op until
// Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	out         Output
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager on the system speaker. volume is
// a beep volume on a log2 scale: 0 is unchanged, -1 is half.
func NewSoundManager(volume float64) *SoundManager {
	return NewSoundManagerWithOutput(speakerOutput{}, volume)
}

// NewSoundManagerWithOutput creates a sound manager playing on out
func NewSoundManagerWithOutput(out Output, volume float64) *SoundManager {
	return &SoundManager{
		out:    out,
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := sm.out.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}

	sm.out.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether cues are audible
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.out.Lock()
	sm.mixer.Clear()
	sm.out.Unlock()
	sm.out.Close()
	sm.initialized = false
}

// Active returns the number of cues still playing
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		sm.out.Lock()
		defer sm.out.Unlock()
	}
	return sm.mixer.Len()
}

// PlayEnqueue plays a short rising chirp
func (sm *SoundManager) PlayEnqueue() {
	sm.play(enqueueCue)
}

// PlayDeploy plays a falling two-note whoosh
func (sm *SoundManager) PlayDeploy() {
	sm.play(deployCue)
}

// PlayError plays a short error buzz sound
func (sm *SoundManager) PlayError() {
	sm.play(errorCue)
}

// PlayDestroyed plays the castle collapse rumble
func (sm *SoundManager) PlayDestroyed() {
	sm.play(destroyedCue)
}

// OnNotification maps arena events to cues. It implements notify.Listener.
func (sm *SoundManager) OnNotification(n core.Notification) {
	switch n.Event {
	case core.EventEnqueue:
		sm.PlayEnqueue()
	case core.EventDeploy:
		sm.PlayDeploy()
	case core.EventEmptyQueue:
		sm.PlayError()
	case core.EventCastleDestroyed:
		sm.PlayDestroyed()
	}
}

func (sm *SoundManager) play(build func(beep.SampleRate) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := build(sampleRate)
	if s == nil {
		return
	}
	s = withVolume(s, sm.volume)

	sm.out.Lock()
	sm.mixer.Add(s)
	sm.out.Unlock()
}
