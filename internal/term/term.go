// Package term hosts the scenes in a terminal. Mouse motion drives the
// trail; a ticker posted into the tcell event queue drives the triangle,
// so both arrive on the one goroutine that runs Host.Run.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/trails/internal/models"
	"github.com/iburimskiy/trails/internal/render"
	"github.com/iburimskiy/trails/internal/scene"
)

// Muter is implemented by the bounce chime.
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

type Options struct {
	Triangles []*render.Layer
	Points    []*render.Layer
	Chime     Muter
	FPS       int
}

type Host struct {
	screen tcell.Screen
	loop   *scene.Loop
	opts   Options

	start            time.Time
	paused           bool
	cursorX, cursorY int
	haveCursor       bool
}

// Open creates and initializes a terminal screen with mouse motion
// reporting.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()
	return screen, nil
}

func New(screen tcell.Screen, loop *scene.Loop, opts Options) *Host {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	return &Host{
		screen: screen,
		loop:   loop,
		opts:   opts,
	}
}

// Run processes events until the user quits. It does not finalize the
// screen.
func (h *Host) Run() error {
	h.start = time.Now()

	done := make(chan struct{})
	defer close(done)
	go h.clock(done)

	for {
		switch ev := h.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			h.screen.Sync()
			h.paint()
		case *tcell.EventKey:
			if quit := h.handleKey(ev); quit {
				return nil
			}
		case *tcell.EventMouse:
			h.handleMouse(ev)
		case *tcell.EventInterrupt:
			h.handleTick()
		}
	}
}

// clock posts one interrupt per frame until done is closed.
func (h *Host) clock(done <-chan struct{}) {
	ticker := time.NewTicker(time.Second / time.Duration(h.opts.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			// A full queue just drops this frame.
			_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case ' ':
			h.paused = !h.paused
		case 'm', 'M':
			if h.opts.Chime != nil {
				h.opts.Chime.SetMuted(!h.opts.Chime.Muted())
			}
		}
	}
	return false
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	moved := !h.haveCursor || x != h.cursorX || y != h.cursorY
	h.cursorX, h.cursorY = x, y
	h.haveCursor = true
	if !moved {
		return
	}

	cols, rows := h.screen.Size()
	surface := models.Rect{Width: float64(cols), Height: float64(rows)}
	if err := h.loop.PointerMove(float64(x), float64(y), surface); err != nil {
		return
	}
	h.paint()
}

func (h *Host) handleTick() {
	if h.paused {
		return
	}
	elapsed := float64(time.Since(h.start)) / float64(time.Millisecond)
	if err := h.loop.Frame(elapsed); err != nil {
		return
	}
	h.paint()
}

func (h *Host) paint() {
	h.screen.Clear()
	for _, l := range h.opts.Triangles {
		for _, tri := range l.Frame().Triangles {
			paintTriangle(h.screen, tri)
		}
	}
	for _, l := range h.opts.Points {
		paintPoints(h.screen, l.Frame().Points)
	}
	h.screen.Show()
}
