package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/trails/internal/audio"
	"github.com/iburimskiy/trails/internal/config"
	"github.com/iburimskiy/trails/internal/game"
	"github.com/iburimskiy/trails/internal/motion"
	"github.com/iburimskiy/trails/internal/render"
	"github.com/iburimskiy/trails/internal/scene"
	"github.com/iburimskiy/trails/internal/term"
	"github.com/iburimskiy/trails/internal/trail"
)

const title = "trails"

type app struct {
	settings  *config.Settings
	loop      *scene.Loop
	triangles []*render.Layer
	points    []*render.Layer
	trail     *scene.TrailScene
	chime     *audio.Chime
}

func main() {
	configPath := flag.String("config", "", "Path to the settings file (default $HOME/.config/trails/settings.json)")
	mode := flag.String("mode", "", "Scenes to show: triangle, points or both")
	backend := flag.String("backend", "", "Drawing backend: ebiten or term")
	sound := flag.Bool("sound", false, "Play a chime when a vertex bounces")
	hud := flag.Bool("hud", true, "Show the status line")
	flag.Parse()

	if flag.NArg() > 0 {
		log.Fatalf("Unknown arguments: %v", flag.Args())
	}

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Fatal("Failed to get settings path:", err)
		}
		path = p
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			settings.Mode = *mode
		case "backend":
			settings.Backend = *backend
		case "sound":
			settings.Sound = *sound
		case "hud":
			settings.ShowHUD = *hud
		}
	})
	settings.Validate()

	a := newApp(settings)
	defer a.close()

	log.Printf("Starting %s backend, mode %s", settings.Backend, settings.Mode)

	switch settings.Backend {
	case config.BackendTerm:
		err = a.runTerm()
	default:
		err = a.runEbiten()
	}
	if err != nil {
		a.close()
		fatal(settings, err)
	}
}

func newApp(settings *config.Settings) *app {
	a := &app{
		settings: settings,
		loop:     scene.NewLoop(),
	}

	if settings.Sound {
		chime, err := audio.NewChime(config.ChimeSampleRate)
		if err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			a.chime = chime
		}
	}

	if settings.ShowTriangle() {
		layer := render.NewLayer()
		tri := scene.NewTriangleScene(motion.New(rand.Float64), layer)
		if a.chime != nil {
			tri.SetBounceListener(a.chime)
		}
		a.loop.OnFrame(tri)
		a.triangles = append(a.triangles, layer)
	}

	if settings.ShowPoints() {
		layer := render.NewLayer()
		a.trail = scene.NewTrailScene(trail.New(rand.Float64), layer)
		a.loop.OnPointerMove(a.trail)
		a.points = append(a.points, layer)
	}

	return a
}

func (a *app) muter() game.Muter {
	if a.chime == nil {
		return nil
	}
	return a.chime
}

func (a *app) runEbiten() error {
	opts := game.Options{
		Triangles: a.triangles,
		Points:    a.points,
		Chime:     a.muter(),
	}
	if a.trail != nil {
		opts.Counter = a.trail.Accumulator().Len
	}

	g, err := game.New(a.settings, a.loop, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(a.settings.WindowWidth, a.settings.WindowHeight)
	ebiten.SetWindowTitle("trails - Space: pause, H: status, M: mute, Esc/Q: quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (a *app) runTerm() error {
	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	host := term.New(screen, a.loop, term.Options{
		Triangles: a.triangles,
		Points:    a.points,
		Chime:     a.muter(),
		FPS:       a.settings.TerminalFPS,
	})
	return host.Run()
}

func (a *app) close() {
	if a.chime != nil {
		a.chime.Close()
	}
}

// fatal reports a startup failure to the operator and exits. The ebiten
// backend has no console to speak of, so it also gets a dialog.
func fatal(settings *config.Settings, err error) {
	log.Printf("Fatal: %v", err)
	if settings.Backend == config.BackendEbiten {
		if derr := zenity.Error(fmt.Sprintf("%s could not start:\n\n%v", title, err),
			zenity.Title(title),
			zenity.ErrorIcon,
		); derr != nil {
			log.Printf("Failed to show error dialog: %v", derr)
		}
	}
	os.Exit(1)
}
