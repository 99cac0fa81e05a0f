// Package scene wires the motion integrator and the point accumulator to a
// renderer and dispatches host callbacks to them one at a time.
package scene

import (
	"errors"

	"github.com/iburimskiy/trails/internal/models"
)

// ErrReentrant is returned when a dispatch starts while another one is
// still running. The nested call is dropped.
var ErrReentrant = errors.New("scene: dispatch while another handler is running")

type FrameHandler interface {
	Frame(elapsed float64)
}

type PointerHandler interface {
	PointerMove(x, y float64, surface models.Rect)
}

// Loop is a single-threaded dispatcher for the animation clock and pointer
// events. Hosts call Frame once per display tick and PointerMove once per
// pointer event, always from the same goroutine.
type Loop struct {
	frames   []FrameHandler
	pointers []PointerHandler
	busy     bool
	elapsed  float64
	ticks    uint64
	moves    uint64
}

func NewLoop() *Loop {
	return &Loop{}
}

func (l *Loop) OnFrame(h FrameHandler) {
	l.frames = append(l.frames, h)
}

func (l *Loop) OnPointerMove(h PointerHandler) {
	l.pointers = append(l.pointers, h)
}

// Frame runs every frame handler in registration order. An elapsed value
// lower than the previous one is replaced by the previous one.
func (l *Loop) Frame(elapsed float64) error {
	if l.busy {
		return ErrReentrant
	}
	l.busy = true
	defer func() { l.busy = false }()

	if elapsed < l.elapsed {
		elapsed = l.elapsed
	}
	l.elapsed = elapsed
	l.ticks++

	for _, h := range l.frames {
		h.Frame(elapsed)
	}
	return nil
}

func (l *Loop) PointerMove(x, y float64, surface models.Rect) error {
	if l.busy {
		return ErrReentrant
	}
	l.busy = true
	defer func() { l.busy = false }()

	l.moves++
	for _, h := range l.pointers {
		h.PointerMove(x, y, surface)
	}
	return nil
}

func (l *Loop) Elapsed() float64 { return l.elapsed }
func (l *Loop) Ticks() uint64    { return l.ticks }
func (l *Loop) Moves() uint64    { return l.moves }
