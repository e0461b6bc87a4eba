package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"
)

// DefaultVolume matches the level effects are mixed for.
const DefaultVolume = 0.58

// Player plays cues on a shared oto context. A nil or muted Player is a
// valid no-op.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	log    *log.Logger
	volume float64

	mu    sync.Mutex
	cache map[Cue][]byte
}

// New opens the audio device. The context finishes initializing in the
// background; cues played before it is ready are skipped.
func New(logger *log.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	return &Player{
		ctx:    ctx,
		ready:  ready,
		log:    logger,
		volume: DefaultVolume,
		cache:  make(map[Cue][]byte),
	}, nil
}

// SetVolume sets the gain for cues played from now on, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	if p == nil {
		return
	}
	p.volume = clamp(v, 0, 1)
}

// Play starts c without waiting for it to finish.
func (p *Player) Play(c Cue) {
	if p == nil || p.ctx == nil || p.volume <= 0 {
		return
	}
	select {
	case <-p.ready:
	default:
		p.log.Debug("audio not ready, skipping cue", "cue", c)
		return
	}
	samples := p.samples(c)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.log.Warn("close audio player", "cue", c, "error", err)
		}
	}()
}

func (p *Player) samples(c Cue) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if b, ok := p.cache[c]; ok {
		return b
	}
	b := Render(c)
	p.cache[c] = b
	return b
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
