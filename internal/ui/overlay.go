//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"hpp-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type densityProvider interface {
	DensityField() []float32
}

type momentumProvider interface {
	MomentumAt(x, y float64) (float64, float64)
}

// Overlay draws coarse-grained flow fields on top of the cell view. Key 1
// toggles particle density, key 2 toggles momentum arrows.
type Overlay struct {
	sim          core.Sim
	scale        int
	showDensity  bool
	showMomentum bool

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image

	samples      []flowSample
	cacheW       int
	cacheH       int
	cacheScale   int
	samplePixels float64
}

type flowSample struct {
	cx, cy float64 // grid coordinates
	sx, sy float64 // screen coordinates
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: max(scale, 1)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showDensity = !o.showDensity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showMomentum = !o.showMomentum
	}
}

// Draw renders the enabled layers onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showDensity {
		if provider, ok := o.sim.(densityProvider); ok {
			o.drawDensity(screen, provider.DensityField(), size)
		}
	}
	if o.showMomentum {
		if provider, ok := o.sim.(momentumProvider); ok {
			o.drawMomentum(screen, provider, size)
		}
	}
}

func (o *Overlay) drawDensity(screen *ebiten.Image, field []float32, size core.Size) {
	total := size.W * size.H
	if len(field) != total {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	const maxAlpha = 170.0
	for i, v := range field {
		base := i * 4
		t := clamp01(float64(v))
		col := densityColor(t)
		o.maskBuf[base+0] = col.R
		o.maskBuf[base+1] = col.G
		o.maskBuf[base+2] = col.B
		o.maskBuf[base+3] = uint8(math.Round(maxAlpha * t))
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawMomentum(screen *ebiten.Image, provider momentumProvider, size core.Size) {
	if !o.ensureSamples(size) {
		return
	}
	const (
		calmThreshold = 0.02
		headAngle     = math.Pi / 6
	)
	scale := float64(o.scale)
	maxLength := o.samplePixels * 0.8
	thickness := math.Max(1, scale*0.6)
	for _, s := range o.samples {
		vx, vy := provider.MomentumAt(s.cx, s.cy)
		speed := math.Hypot(vx, vy)
		if speed < calmThreshold {
			o.drawPoint(screen, s.sx, s.sy, math.Max(1, scale*0.5), color.RGBA{R: 90, G: 130, B: 170, A: 120})
			continue
		}
		// A cell carries at most one unit of net flux per axis.
		norm := clamp01(speed / math.Sqrt2)
		length := maxLength * math.Sqrt(norm)
		nx, ny := vx/speed, vy/speed
		tailX, tailY := s.sx-nx*length/2, s.sy-ny*length/2
		tipX, tipY := s.sx+nx*length/2, s.sy+ny*length/2
		col := arrowColor(norm)
		o.drawLine(screen, tailX, tailY, tipX, tipY, thickness, col)

		head := length * 0.35
		angle := math.Atan2(ny, nx)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle+headAngle)*head, tipY-math.Sin(angle+headAngle)*head, thickness, col)
		o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle-headAngle)*head, tipY-math.Sin(angle-headAngle)*head, thickness, col)
	}
}

// ensureSamples lays out an even lattice of arrow anchors for the current
// grid size and scale.
func (o *Overlay) ensureSamples(size core.Size) bool {
	if o.cacheW == size.W && o.cacheH == size.H && o.cacheScale == o.scale && len(o.samples) > 0 {
		return true
	}
	const (
		targetSamples = 400.0
		minSpacing    = 5
		maxSpacing    = 24
	)
	spacing := int(math.Sqrt(float64(size.W*size.H) / targetSamples))
	spacing = max(minSpacing, min(spacing, maxSpacing))

	o.samples = o.samples[:0]
	for y := spacing / 2; y < size.H; y += spacing {
		for x := spacing / 2; x < size.W; x += spacing {
			cx, cy := float64(x)+0.5, float64(y)+0.5
			o.samples = append(o.samples, flowSample{
				cx: cx,
				cy: cy,
				sx: cx * float64(o.scale),
				sy: cy * float64(o.scale),
			})
		}
	}
	o.cacheW, o.cacheH, o.cacheScale = size.W, size.H, o.scale
	o.samplePixels = float64(spacing * o.scale)
	return len(o.samples) > 0
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func densityColor(t float64) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(40 + 215*t)),
		G: uint8(math.Round(80 + 100*t)),
		B: uint8(math.Round(200 - 160*t)),
		A: 255,
	}
}

func arrowColor(t float64) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(80 + 170*t)),
		G: uint8(math.Round(200 + 40*t)),
		B: uint8(math.Round(230 - 60*t)),
		A: uint8(math.Round(160 + 90*t)),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
