package anim

import (
	"context"
	"time"
)

// TickerDriver drives the loop from a time.Ticker. A non-positive interval
// runs ticks back to back, which is what headless export wants.
type TickerDriver struct{}

func (TickerDriver) Run(ctx context.Context, interval time.Duration, onTick func() error) error {
	if interval <= 0 {
		for ctx.Err() == nil {
			if err := onTick(); err != nil {
				return err
			}
		}
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := onTick(); err != nil {
				return err
			}
		}
	}
}
