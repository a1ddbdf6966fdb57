// Package audio plays short procedural sound cues for game events.
package audio

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/taxi-rush/internal/core"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	// maxVoices caps simultaneous cues so rapid collisions don't clip.
	maxVoices = 3
)

// Player plays cues without blocking the caller.
type Player interface {
	Play(cue core.Cue)
}

// Nop discards every cue. Used when muted and for SSH sessions.
type Nop struct{}

func (Nop) Play(core.Cue) {}

// Oto plays cues through the local sound device.
type Oto struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	voices int32
	cache  map[core.Cue][]byte
}

// NewOto opens the audio device. Only one oto context may exist per
// process, so call this once.
func NewOto(volume float64) (*Oto, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	cache := map[core.Cue][]byte{
		core.CueCollision: Samples(core.CueCollision),
		core.CueDelivery:  Samples(core.CueDelivery),
		core.CueRefuel:    Samples(core.CueRefuel),
	}
	return &Oto{
		ctx:    ctx,
		ready:  ready,
		volume: core.ClampF(volume, 0, 1),
		cache:  cache,
	}, nil
}

// Play starts the cue in the background. Cues raised before the device is
// ready, or while too many are already sounding, are dropped.
func (o *Oto) Play(cue core.Cue) {
	select {
	case <-o.ready:
	default:
		return
	}
	samples := o.cache[cue]
	if len(samples) == 0 {
		return
	}
	if atomic.AddInt32(&o.voices, 1) > maxVoices {
		atomic.AddInt32(&o.voices, -1)
		return
	}
	go func() {
		defer atomic.AddInt32(&o.voices, -1)
		player := o.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(o.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}
