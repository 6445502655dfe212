package commands

import (
	"context"
	"log/slog"
	"time"
)

type detached struct {
	logger  *slog.Logger
	timeout time.Duration
}

// NewDetached runs each job on its own goroutine with a bounded context.
func NewDetached(logger *slog.Logger, timeout time.Duration) Background {
	return &detached{logger: logger, timeout: timeout}
}

func (d *detached) Go(name string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("background job panicked", "job", name, "panic", r)
			}
		}()

		if err := fn(ctx); err != nil {
			d.logger.Warn("background job failed", "job", name, "error", err.Error())
		}
	}()
}
