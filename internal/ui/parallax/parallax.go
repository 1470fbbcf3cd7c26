// Package parallax provides pure functions for computing layer transforms
// from scroll positions.
//
// A layer is anchored at an integer page index; the viewport scrolls through
// fractional page offsets. Each function maps one (offset, index) pair to the
// numeric parameters a renderer needs: horizontal shift, opacity, scale.
// Nothing here touches the terminal, time, or shared state, so every function
// is safe to call from anywhere, as often as needed.
package parallax

import "math"

// MinScale and MaxScale bound the computed scale factor. Without them a
// large distance or scale speed would produce inverted or zero-size layers.
const (
	MinScale = 0.5
	MaxScale = 1.5
)

// Params controls how a layer responds to scrolling.
type Params struct {
	Speed          float64 // horizontal movement multiplier, typically 0.0-1.5
	VerticalOffset float64 // passed through to the output unchanged
	Fade           bool    // fade the layer out as it leaves center
}

// Render is the computed transform for one layer at one scroll position.
type Render struct {
	HorizontalOffset float64
	VerticalOffset   float64
	Opacity          float64 // always in [0, 1]
}

// ScaleParams controls a scaling layer.
type ScaleParams struct {
	Speed          float64 // horizontal movement multiplier
	ScaleSpeed     float64 // scale growth at center; 0 disables scaling
	VerticalOffset float64 // passed through to the output unchanged
}

// ScaleRender is the computed transform for one scaling layer.
type ScaleRender struct {
	HorizontalOffset float64
	VerticalOffset   float64
	Scale            float64 // always in [MinScale, MaxScale]
}

// Distance returns the signed offset between the current scroll position and
// a layer's anchor page. Zero when the layer is centered, positive once the
// viewport has scrolled past it.
func Distance(pageOffset float64, pageIndex int) float64 {
	return pageOffset - float64(pageIndex)
}

// Compute returns the transform for the layer anchored at pageIndex with the
// viewport scrolled to pageOffset. The layer shifts against the scroll
// direction by distance * viewportWidth * speed. With fade enabled, opacity
// falls off linearly with distance and clamps to [0, 1]; otherwise it is 1.
//
// All numeric inputs are accepted as-is: a negative speed or width mirrors
// the shift rather than failing.
func Compute(pageOffset float64, pageIndex int, viewportWidth float64, p Params) Render {
	d := Distance(pageOffset, pageIndex)
	r := Render{
		HorizontalOffset: -d * viewportWidth * p.Speed,
		VerticalOffset:   p.VerticalOffset,
		Opacity:          1,
	}
	if p.Fade {
		r.Opacity = clamp(1-math.Abs(d), 0, 1)
	}
	return r
}

// ComputeScale returns the transform for a layer that grows toward the
// center instead of fading. Scale peaks at 1 + p.ScaleSpeed when the layer
// is centered and decays linearly with distance; the result clamps to
// [MinScale, MaxScale]. The horizontal shift matches Compute.
func ComputeScale(pageOffset float64, pageIndex int, viewportWidth float64, p ScaleParams) ScaleRender {
	d := Distance(pageOffset, pageIndex)
	raw := 1 + p.ScaleSpeed*(1-math.Abs(d))
	return ScaleRender{
		HorizontalOffset: -d * viewportWidth * p.Speed,
		VerticalOffset:   p.VerticalOffset,
		Scale:            clamp(raw, MinScale, MaxScale),
	}
}

func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
