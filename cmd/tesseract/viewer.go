package main

import (
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/tesseract/pkg/mathnd"
	"github.com/taigrr/tesseract/pkg/render"
)

// eulerSnapStep is the angle grid used by the E key.
const eulerSnapStep = math.Pi / 12

// Plane is a rotation plane given by two axes.
type Plane struct {
	From, To int
}

func (p Plane) String() string {
	return render.AxisName(p.From) + render.AxisName(p.To)
}

// Pitch, yaw and roll as rotation planes.
var (
	planeYaw   = Plane{0, 2} // XZ
	planePitch = Plane{2, 1} // ZY, so positive pitch tips the top away
	planeRoll  = Plane{0, 1} // XY
)

// RotationAxis tracks the angular velocity of one rotation plane with
// spring decay
type RotationAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewRotationAxis creates an axis with harmonica spring for smooth velocity decay
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update returns the angle to turn this frame and decays velocity toward 0
// using the spring
func (a *RotationAxis) Update() float64 {
	delta := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return delta
}

// RotationState holds one spring-decayed velocity per rotation plane.
type RotationState struct {
	Planes []Plane
	axes   []RotationAxis
	fps    int
}

// NewRotationState creates rotation state for every plane of an
// n-dimensional space.
func NewRotationState(dimension, fps int) *RotationState {
	r := &RotationState{Planes: rotationPlanes(dimension), fps: fps}
	r.Reset()
	return r
}

// rotationPlanes lists the n(n-1)/2 axis pairs of an n-dimensional space.
func rotationPlanes(n int) []Plane {
	var planes []Plane
	for i := range n {
		for j := i + 1; j < n; j++ {
			planes = append(planes, Plane{i, j})
		}
	}
	return planes
}

// HyperPlanes returns the planes that involve an axis past the third.
func (r *RotationState) HyperPlanes() []Plane {
	var planes []Plane
	for _, p := range r.Planes {
		if p.To >= 3 {
			planes = append(planes, p)
		}
	}
	return planes
}

func (r *RotationState) index(p Plane) (int, float64) {
	for i, q := range r.Planes {
		switch q {
		case p:
			return i, 1
		case Plane{p.To, p.From}:
			return i, -1
		}
	}
	return -1, 0
}

// ApplyImpulse adds angular velocity in plane p. Planes the space does not
// have are ignored.
func (r *RotationState) ApplyImpulse(p Plane, amount float64) {
	if i, sign := r.index(p); i >= 0 {
		r.axes[i].Velocity += sign * amount
	}
}

// Velocity returns the angular velocity in plane p.
func (r *RotationState) Velocity(p Plane) float64 {
	i, sign := r.index(p)
	if i < 0 {
		return 0
	}
	return sign * r.axes[i].Velocity
}

// RandomImpulse spins every plane by a random amount up to strength.
func (r *RotationState) RandomImpulse(rng *rand.Rand, strength float64) {
	for i := range r.axes {
		r.axes[i].Velocity += (rng.Float64() - 0.5) * strength
	}
}

// Update turns t by this frame's velocities and decays them. The basis is
// re-orthonormalized so rounding errors do not build up.
func (r *RotationState) Update(t mathnd.Transform) mathnd.Transform {
	moved := false
	for i, p := range r.Planes {
		delta := r.axes[i].Update()
		if delta == 0 {
			continue
		}
		rotation, err := mathnd.FromRotation(p.From, p.To, delta)
		if err != nil {
			continue
		}
		t.Basis = rotation.ComposeExpand(t.Basis)
		moved = true
	}
	if moved {
		t.Basis = t.Basis.Orthonormalized()
	}
	return t
}

// Reset stops all rotation.
func (r *RotationState) Reset() {
	r.axes = make([]RotationAxis, len(r.Planes))
	for i := range r.axes {
		r.axes[i] = NewRotationAxis(r.fps)
	}
}

// snapAxisAligned turns t to the nearest signed permutation of the axes.
func snapAxisAligned(t mathnd.Transform) mathnd.Transform {
	return t.OrthonormalizedAxisAligned()
}

// snapEuler decomposes the rotation of t into plane rotations, rounds each
// angle to step and rebuilds the basis. Rotations that do not decompose
// into single planes are lost.
func snapEuler(t mathnd.Transform, step float64) (mathnd.Transform, mathnd.Euler) {
	euler := mathnd.EulerFromBasis(t.Basis).Snapped(step)
	n := max(t.Basis.Dimension(), euler.Dimension())
	return mathnd.Transform{
		Basis:  euler.ToRotationBasis().WithDimension(n),
		Origin: t.Origin.Duplicate(),
	}, euler
}

// ViewState holds all view-related settings (UI state, not library code)
type ViewState struct {
	ShowHUD    bool   // Whether to show the HUD overlay
	ShowAxes   bool   // Whether to draw the axis gizmo
	ShowBounds bool   // Whether to draw mesh bounding rects
	Hyper      int    // Index into the hyper planes steered by J/L
	Status     string // Last action, shown in the HUD
}

// NewViewState creates default view state
func NewViewState() *ViewState {
	return &ViewState{ShowAxes: true}
}

// ActiveHyperPlane returns the hyper plane steered by J/L.
func (v *ViewState) ActiveHyperPlane(r *RotationState) (Plane, bool) {
	planes := r.HyperPlanes()
	if len(planes) == 0 {
		return Plane{}, false
	}
	return planes[v.Hyper%len(planes)], true
}
