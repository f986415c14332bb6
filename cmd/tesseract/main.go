// tesseract - Terminal N-dimensional Wireframe Viewer
// View N-dimensional scenes and GLB models as wireframes in your terminal.
//
// Controls:
//
//	Mouse drag  - Rotate in the XZ/YZ planes
//	Scroll      - Zoom in/out
//	W/S         - Rotate in the YZ plane
//	A/D         - Rotate in the XZ plane
//	Z/C         - Rotate in the XY plane
//	J/L         - Rotate in the active hyper plane (XW, YW, ...)
//	Tab         - Cycle the active hyper plane
//	Space       - Apply random impulse
//	R           - Reset rotation
//	O           - Snap rotation to the nearest axis-aligned orientation
//	E           - Snap plane rotation angles to 15 degree steps
//	V           - Toggle orthographic projection
//	G           - Toggle axis gizmo
//	B           - Toggle bounding rects
//	P           - Save a PNG snapshot
//	?           - Toggle HUD overlay
//	+/-         - Adjust zoom
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/tesseract/pkg/config"
	"github.com/taigrr/tesseract/pkg/mathnd"
	"github.com/taigrr/tesseract/pkg/models"
	"github.com/taigrr/tesseract/pkg/render"
	"github.com/taigrr/tesseract/pkg/scene"
)

var (
	configPath = flag.String("config", "", "Path to config file (default: user config dir)")
	targetFPS  = flag.Int("fps", 60, "Target FPS")
	bgColor    = flag.String("bg", "#1e1e28", "Background color (hex)")
	dimension  = flag.Int("dim", 4, "Dimension of the built-in tesseract")
	ortho      = flag.Bool("ortho", false, "Start with orthographic projection")
	noDepth    = flag.Bool("no-depth", false, "Drop axes past the third instead of dividing by them")
	logPath    = flag.String("log", "", "Write logs to this file instead of stderr")
	snapDir    = flag.String("snapshot-dir", ".", "Directory for PNG snapshots")
	verbose    = flag.Bool("v", false, "Verbose (debug) logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tesseract - Terminal N-dimensional Wireframe Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tesseract [options] [scene.yaml|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Without a file a tesseract is shown.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Rotate in XZ/YZ\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D/Z/C - Rotate in YZ, XZ, XY\n")
		fmt.Fprintf(os.Stderr, "  J/L, Tab    - Rotate in / cycle the hyper plane\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset view\n")
		fmt.Fprintf(os.Stderr, "  O           - Snap to axes\n")
		fmt.Fprintf(os.Stderr, "  E           - Snap angles to 15 degrees\n")
		fmt.Fprintf(os.Stderr, "  V/G/B       - Toggle ortho, gizmo, bounds\n")
		fmt.Fprintf(os.Stderr, "  P           - Save PNG snapshot\n")
		fmt.Fprintf(os.Stderr, "  ?           - Toggle HUD overlay\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the flags that were set on
// the command line on top of it.
func loadConfig() (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return config.Config{}, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.FPS = *targetFPS
		case "bg":
			cfg.Background = *bgColor
		case "ortho":
			cfg.Camera.Orthogonal = *ortho
		case "snapshot-dir":
			cfg.SnapshotDir = *snapDir
		case "no-depth":
			cfg.Camera.DepthPerspective = !*noDepth
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func setupLogging(cfg config.Config) (func(), error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	var w io.Writer = os.Stderr
	closeLog := func() {}
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeLog, nil
}

// loadScene builds the scene to show: a scene file, a GLB model, or the
// built-in tesseract.
func loadScene(path string, cfg config.Config) (*scene.Scene, string, error) {
	edge, err := cfg.Edge()
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		return builtinScene(*dimension, edge), fmt.Sprintf("%d-cube", *dimension), nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		s, err := scene.Load(path)
		if err != nil {
			return nil, "", fmt.Errorf("load scene: %w", err)
		}
		return s, filepath.Base(path), nil
	case ".glb", ".gltf":
		mesh, err := models.LoadGLB(path)
		if err != nil {
			return nil, "", fmt.Errorf("load model: %w", err)
		}
		normalizeMesh(mesh)
		s := &scene.Scene{Root: scene.NewNode("root"), Camera: cameraSettings(cfg)}
		node := scene.NewNode(mesh.Name)
		node.Mesh = mesh
		node.Color = edge
		if err := s.Root.AddChild(node); err != nil {
			return nil, "", err
		}
		return s, filepath.Base(path), nil
	default:
		return nil, "", fmt.Errorf("unsupported format: %s (use .yaml or .glb)", ext)
	}
}

// builtinScene returns a hypercube of the given dimension.
func builtinScene(n int, edge color.RGBA) *scene.Scene {
	n = max(n, 2)
	s := &scene.Scene{Root: scene.NewNode("root"), Camera: scene.DefaultCamera()}
	node := scene.NewNode("hypercube")
	node.Mesh = models.NewBoxWireMesh(mathnd.Fill(n, 2))
	node.Color = edge
	_ = s.Root.AddChild(node)
	return s
}

// normalizeMesh centers the mesh on the origin and scales it to fit a box
// of size 2.
func normalizeMesh(mesh *models.ArrayWireMesh) {
	bounds := mesh.Bounds()
	maxDim := 0.0
	for _, s := range bounds.Size {
		maxDim = math.Max(maxDim, s)
	}
	if maxDim == 0 {
		return
	}
	scale := 2.0 / maxDim
	n := bounds.Dimension()
	mesh.Transform(mathnd.Transform{
		Basis:  mathnd.FromScale(mathnd.Fill(n, scale)),
		Origin: bounds.Center().MultiplyScalar(-scale),
	})
}

// cameraSettings returns the scene camera described by the config.
func cameraSettings(cfg config.Config) scene.Camera {
	c := scene.DefaultCamera()
	c.Transform = mathnd.FromPosition(mathnd.Vec(0, 0, cfg.Camera.Distance))
	c.FOV = cfg.Camera.FOV * math.Pi / 180
	c.Orthogonal = cfg.Camera.Orthogonal
	c.DepthPerspective = cfg.Camera.DepthPerspective
	c.DepthDistance = cfg.Camera.DepthDistance
	return c
}

func run(cfg config.Config, path string) error {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	sc, title, err := loadScene(path, cfg)
	if err != nil {
		return err
	}
	if path == "" {
		sc.Camera = cameraSettings(cfg)
	}

	dim := max(sc.Root.Dimension(), 3)
	edgeCount := 0
	sc.Root.Walk(func(n *scene.Node) bool {
		if n.Mesh != nil {
			edgeCount += len(n.Mesh.EdgeIndices()) / 2
		}
		return true
	})
	slog.Info("loaded scene", "title", title, "dimension", dim, "edges", edgeCount)

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	// Create renderer
	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)

	// Create camera
	camera := render.CameraFromScene(sc.Camera)
	camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))
	homeCamera := camera.Transform.Duplicate()

	wireframe := render.NewWireframe(camera, fb)

	hud := NewHUD(title, edgeCount, dim)
	rotation := NewRotationState(dim, cfg.FPS)
	viewState := NewViewState()
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Input state
	inputTorque := map[Plane]float64{}
	const torqueStrength = 3.0

	// Mouse state
	var mouseDown bool
	var lastMouseX, lastMouseY int

	zoom := func(distance float64) {
		camera.MoveForward(distance)
	}

	snapshot := func() {
		plane, _ := viewState.ActiveHyperPlane(rotation)
		img := fb.Snapshot(cfg.SnapshotScale)
		render.DrawLabel(img, 8, 16, hud.Caption(planeLabel(plane, dim)), render.ColorWhite)
		name := fmt.Sprintf("tesseract-%s.png", time.Now().Format("20060102-150405"))
		out := filepath.Join(cfg.SnapshotDir, name)
		if err := render.WritePNG(out, img); err != nil {
			slog.Error("save snapshot", "error", err)
			viewState.Status = "snapshot failed"
			return
		}
		slog.Info("saved snapshot", "path", out)
		viewState.Status = "saved " + name
	}

	handle := func(ev uv.Event) {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			width, height = ev.Width, ev.Height
			term.Erase()
			term.Resize(width, height)
			termRenderer = render.NewTerminalRenderer(term, width, height)
			fbWidth, fbHeight = termRenderer.FramebufferSize()
			fb = render.NewFramebuffer(fbWidth, fbHeight)
			camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))
			wireframe = render.NewWireframe(camera, fb)
			wireframe.ShowBounds = viewState.ShowBounds

		case uv.KeyPressEvent:
			switch {
			case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
				cancel()
			case ev.MatchString("w", "up"):
				inputTorque[planePitch] = -torqueStrength
			case ev.MatchString("s", "down"):
				inputTorque[planePitch] = torqueStrength
			case ev.MatchString("a", "left"):
				inputTorque[planeYaw] = -torqueStrength
			case ev.MatchString("d", "right"):
				inputTorque[planeYaw] = torqueStrength
			case ev.MatchString("z"):
				inputTorque[planeRoll] = -torqueStrength
			case ev.MatchString("c"):
				inputTorque[planeRoll] = torqueStrength
			case ev.MatchString("j"), ev.MatchString("l"):
				if plane, ok := viewState.ActiveHyperPlane(rotation); ok {
					sign := 1.0
					if ev.MatchString("j") {
						sign = -1
					}
					inputTorque[plane] = sign * torqueStrength
				}
			case ev.MatchString("tab"):
				viewState.Hyper++
			case ev.MatchString("space"):
				rotation.RandomImpulse(rng, 0.1)
			case ev.MatchString("r"):
				rotation.Reset()
				sc.Root.Transform = mathnd.Transform{}
				camera.SetTransform(homeCamera)
				viewState.Status = ""
			case ev.MatchString("o"):
				rotation.Reset()
				sc.Root.Transform = snapAxisAligned(sc.Root.Transform)
				viewState.Status = "snapped to axes"
			case ev.MatchString("e"):
				rotation.Reset()
				var euler mathnd.Euler
				sc.Root.Transform, euler = snapEuler(sc.Root.Transform, eulerSnapStep)
				viewState.Status = "snapped " + euler.String()
			case ev.MatchString("v"):
				camera.SetOrthogonal(!camera.Orthogonal)
			case ev.MatchString("g"):
				viewState.ShowAxes = !viewState.ShowAxes
			case ev.MatchString("b"):
				viewState.ShowBounds = !viewState.ShowBounds
				wireframe.ShowBounds = viewState.ShowBounds
			case ev.MatchString("p"):
				snapshot()
			case ev.MatchString("+", "="):
				zoom(0.5)
			case ev.MatchString("-", "_"):
				zoom(-0.5)
			case ev.MatchString("?"), ev.MatchString("shift+/"):
				// Toggle HUD
				viewState.ShowHUD = !viewState.ShowHUD
			}

		case uv.KeyReleaseEvent:
			clear(inputTorque)

		case uv.MouseClickEvent:
			mouseDown = true
			lastMouseX, lastMouseY = ev.X, ev.Y

		case uv.MouseReleaseEvent:
			mouseDown = false

		case uv.MouseMotionEvent:
			if mouseDown {
				dx := ev.X - lastMouseX
				dy := ev.Y - lastMouseY
				rotation.ApplyImpulse(planePitch, float64(dy)*0.03)
				rotation.ApplyImpulse(planeYaw, float64(dx)*0.03)
				lastMouseX, lastMouseY = ev.X, ev.Y
			}

		case uv.MouseWheelEvent:
			switch ev.Button {
			case uv.MouseWheelUp:
				zoom(0.5)
			case uv.MouseWheelDown:
				zoom(-0.5)
			}
		}
	}

	// Main loop
	targetDuration := time.Second / time.Duration(cfg.FPS)
	lastFrame := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	events := term.Events()
	for {
		// Drain pending input before drawing the frame
	drain:
		for {
			select {
			case ev := <-events:
				handle(ev)
			default:
				break drain
			}
		}

		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		if dt > 0.1 {
			dt = 0.1
		}

		// Apply input torque and decay it (key release events unreliable)
		for plane, torque := range inputTorque {
			rotation.ApplyImpulse(plane, torque*dt)
			inputTorque[plane] = torque * 0.9
		}

		// Update springs (harmonica handles timing internally)
		sc.Root.Transform = rotation.Update(sc.Root.Transform)

		// Render
		fb.Clear(bg)
		if viewState.ShowAxes {
			wireframe.DrawAxes(dim, 1.5)
		}
		wireframe.DrawScene(sc.Root)

		// Display
		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		// HUD overlay (always update FPS, render clears lines when HUD off)
		hud.UpdateFPS()
		plane, _ := viewState.ActiveHyperPlane(rotation)
		hud.Render(width, height, viewState, planeLabel(plane, dim), rotationLabel(sc.Root.Transform))

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// planeLabel names the active hyper plane, or returns "" in three or fewer
// dimensions.
func planeLabel(p Plane, dim int) string {
	if dim <= 3 {
		return ""
	}
	return p.String()
}

// rotationLabel describes the rotation of t as plane rotations in degrees,
// or reports that it is not a product of single-plane rotations.
func rotationLabel(t mathnd.Transform) string {
	euler := mathnd.EulerFromBasis(t.Basis)
	n := t.Basis.Dimension()
	if !euler.ToRotationBasis().WithDimension(n).IsEqualApprox(t.Basis.WithDimension(n)) {
		return "compound rotation"
	}
	if len(euler) == 0 {
		return "identity"
	}
	parts := make([]string, len(euler))
	for i, r := range euler {
		parts[i] = fmt.Sprintf("%s%s %.0f°", render.AxisName(r.From), render.AxisName(r.To), r.Angle*180/math.Pi)
	}
	return strings.Join(parts, " ")
}
