// Package scene turns declared shape entries into drawable shapes.
package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"wireview/internal/config"
	"wireview/internal/mathutil"
	"wireview/internal/shape"
)

// ErrUnknownKind is returned for a shape entry whose kind is not square,
// cube or axis.
var ErrUnknownKind = errors.New("unknown shape kind")

// Build constructs one shape per entry, in order. Entries without an id
// get a random one; entries without a color are drawn black.
func Build(specs []config.ShapeSpec) ([]shape.Shape, error) {
	shapes := make([]shape.Shape, 0, len(specs))
	for i, s := range specs {
		sh, err := build(s)
		if err != nil {
			return nil, fmt.Errorf("scene: shapes[%d]: %w", i, err)
		}
		shapes = append(shapes, sh)
	}
	return shapes, nil
}

// Default builds the stock scene.
func Default() []shape.Shape {
	shapes, err := Build(config.Default().Shapes)
	if err != nil {
		panic(err)
	}
	return shapes
}

func build(s config.ShapeSpec) (shape.Shape, error) {
	id := shape.ID(s.ID)
	if id == "" {
		id = shape.ID(uuid.NewString())
	}

	colorName := s.Color
	if colorName == "" {
		colorName = "black"
	}
	c, err := shape.ParseColor(colorName)
	if err != nil {
		return nil, err
	}
	center := mathutil.Vec3(s.Center)

	switch strings.ToLower(s.Kind) {
	case "square":
		return shape.NewSquare(id, s.Side, c, center)
	case "cube":
		return shape.NewCube(id, s.Side, c, center)
	case "axis":
		if s.Side == 0 {
			return shape.NewAxis(id, c), nil
		}
		return shape.NewAxisWithLength(id, c, s.Side)
	default:
		return nil, fmt.Errorf("%q: %w", s.Kind, ErrUnknownKind)
	}
}
