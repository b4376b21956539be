// Package sound plays the short detent click that accompanies every change
// of the selected quantity.
package sound

import (
	"bytes"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Clicker gives audible feedback for a value change.
type Clicker interface {
	Click()
	Close() error
}

// Nop is a silent Clicker.
type Nop struct{}

func (Nop) Click()       {}
func (Nop) Close() error { return nil }

// DefaultClickLength is the length of the synthesized click.
const DefaultClickLength = 25 * time.Millisecond

// maxVoices bounds overlapping clicks during a fast wheel spin.
const maxVoices = 4

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto(rate int) (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   rate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// Player plays a Sample through the system audio device.
type Player struct {
	ctx    *oto.Context
	sample Sample
	volume float64

	mu     sync.Mutex
	voices []*oto.Player
	closed bool
}

// New opens the audio device at the sample's rate. Only one device rate is
// used per process, so the first sample opened decides it.
func New(s Sample, volume float64) (*Player, error) {
	ctx, err := initOto(s.SampleRate)
	if err != nil {
		return nil, err
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Player{ctx: ctx, sample: s, volume: volume}, nil
}

// Click starts the sample without blocking. The oldest voice is cut when
// too many are still sounding.
func (p *Player) Click() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || len(p.sample.PCM) == 0 {
		return
	}
	p.reap()
	if len(p.voices) >= maxVoices {
		p.voices[0].Close()
		p.voices = p.voices[1:]
	}
	v := p.ctx.NewPlayer(bytes.NewReader(p.sample.PCM))
	v.SetVolume(p.volume)
	v.Play()
	p.voices = append(p.voices, v)
}

// reap drops finished voices. Caller holds mu.
func (p *Player) reap() {
	live := p.voices[:0]
	for _, v := range p.voices {
		if v.IsPlaying() {
			live = append(live, v)
			continue
		}
		v.Close()
	}
	p.voices = live
}

// Close stops all voices. The shared device stays open.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	for _, v := range p.voices {
		v.Close()
	}
	p.voices = nil
	return nil
}
