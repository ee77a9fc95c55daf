// Package splash plays the startup animation. A single background goroutine
// decodes frames onto a channel and the UI pulls the latest one per redraw
// tick; Stop flips a cancellation signal and joins the goroutine before the
// splash resources are released.
package splash

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// DefaultInterval paces the decode loop at roughly 30fps.
const DefaultInterval = 33 * time.Millisecond

// frameSeparator delimits frames inside the animation file.
const frameSeparator = "---"

const fallbackText = "webabiq"

// Fallback is the wordmark shown when no animation asset is available.
func Fallback() string {
	return fallbackText
}

// Assets holds the optional splash animation and logo. Missing files degrade
// to the text fallback, never to an error.
type Assets struct {
	Frames []string
	Logo   string
}

// LoadAssets reads the animation and logo from dir, loading both
// concurrently. Any missing or unreadable asset is replaced by its fallback.
func LoadAssets(dir string) Assets {
	var (
		a  Assets
		g  errgroup.Group
		mu sync.Mutex
	)

	g.Go(func() error {
		data, err := os.ReadFile(filepath.Join(dir, "splash.txt"))
		if err != nil {
			return fmt.Errorf("splash animation: %w", err)
		}

		mu.Lock()
		a.Frames = ParseFrames(string(data))
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		data, err := os.ReadFile(filepath.Join(dir, "logo.txt"))
		if err != nil {
			return fmt.Errorf("splash logo: %w", err)
		}

		mu.Lock()
		a.Logo = strings.TrimRight(string(data), "\n")
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Debug("splash asset missing, using text fallback", "dir", dir, "error", err)
	}

	if len(a.Frames) == 0 {
		a.Frames = []string{Fallback()}
	}
	if a.Logo == "" {
		a.Logo = Fallback()
	}

	return a
}

// ParseFrames splits the animation file into frames. Frames are separated by
// a line containing only "---"; blank frames are dropped.
func ParseFrames(data string) []string {
	var (
		frames  []string
		current []string
	)

	flush := func() {
		frame := strings.TrimRight(strings.Join(current, "\n"), "\n")
		if strings.TrimSpace(frame) != "" {
			frames = append(frames, frame)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == frameSeparator {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return frames
}

// Player loops frames from a background decode goroutine. The goroutine
// owns its decode state exclusively and only publishes frames; it never
// touches application state.
type Player struct {
	frames   []string
	interval time.Duration

	frameCh  chan string
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	started  bool
}

// Option configures a Player.
type Option func(*Player)

// WithInterval overrides the frame pacing.
func WithInterval(d time.Duration) Option {
	return func(p *Player) {
		p.interval = d
	}
}

// NewPlayer creates a player over the given frames. An empty frame list
// plays the text fallback.
func NewPlayer(frames []string, opts ...Option) *Player {
	if len(frames) == 0 {
		frames = []string{Fallback()}
	}

	p := &Player{
		frames:   frames,
		interval: DefaultInterval,
		frameCh:  make(chan string, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Start launches the decode goroutine. Starting twice is a no-op.
func (p *Player) Start() {
	if p.started {
		return
	}

	p.started = true
	go p.decode()
}

func (p *Player) decode() {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	i := 0
	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			frame := p.frames[i%len(p.frames)]
			i++

			select {
			case p.frameCh <- frame:
			default:
				// UI has not consumed the previous frame, drop this one.
			}
		}
	}
}

// Latest returns the most recently decoded frame without blocking. The
// second return is false when no new frame has been published since the
// last call.
func (p *Player) Latest() (string, bool) {
	select {
	case frame := <-p.frameCh:
		return frame, true
	default:
		return "", false
	}
}

// FirstFrame returns the initial frame so the splash is never blank before
// the decoder publishes.
func (p *Player) FirstFrame() string {
	return p.frames[0]
}

// Stop cancels the decode loop and joins the goroutine. It is safe to call
// more than once and before Start.
func (p *Player) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})

	if p.started {
		<-p.done
	}
}
