// Package shape provides the wireframe sources drawn by the animation loop.
package shape

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"wireview/internal/mathutil"
)

// ErrInvalidParameter is returned by constructors given a non-positive or
// non-finite size.
var ErrInvalidParameter = errors.New("invalid shape parameter")

// ID identifies a shape within a scene.
type ID string

// Shape is anything that can describe itself as a polyline in 3D.
// Consecutive points in EdgePoints are joined by a line segment.
type Shape interface {
	ID() ID
	Color() color.NRGBA
	EdgePoints() []mathutil.Vec3
}

// base holds the attributes every shape carries.
type base struct {
	id    ID
	color color.NRGBA
}

func (b base) ID() ID             { return b.id }
func (b base) Color() color.NRGBA { return b.color }

func checkSize(kind, name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("shape: %s %s=%v: %w", kind, name, v, ErrInvalidParameter)
	}
	return nil
}
