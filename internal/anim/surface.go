package anim

import (
	"context"
	"image/color"
	"time"

	"wireview/internal/shape"
	"wireview/internal/view"
)

// Surface displays the projected polylines.
type Surface interface {
	// UpsertPolyline draws or replaces the polyline for id.
	UpsertPolyline(id shape.ID, pts view.Polyline, c color.NRGBA)
	// Remove drops the polyline for id, if any.
	Remove(id shape.ID)
	SetStatusText(text string)
	// Present flushes the current frame.
	Present() error
}

// Driver calls onTick once per interval until ctx is done or onTick fails.
type Driver interface {
	Run(ctx context.Context, interval time.Duration, onTick func() error) error
}
