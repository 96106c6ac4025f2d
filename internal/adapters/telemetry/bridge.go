package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/devbuild/internal/core/ports"
	"go.trai.ch/devbuild/internal/ui/style"
)

// Bridge implements sdktrace.SpanProcessor and logs the duration of every
// finished span while enabled.
type Bridge struct {
	logger  ports.Logger
	enabled atomic.Bool
}

// NewBridge returns a disabled Bridge logging through logger.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// SetEnabled toggles duration logging.
func (b *Bridge) SetEnabled(enable bool) {
	b.enabled.Store(enable)
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !b.enabled.Load() || b.logger == nil {
		return
	}

	b.logger.Info(FormatTiming(s.Name(), s.EndTime().Sub(s.StartTime()), s.Status().Code == codes.Error))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// FormatTiming renders one timing line.
func FormatTiming(name string, d time.Duration, failed bool) string {
	line := fmt.Sprintf("%s %s in %s", style.Clock, name, d.Round(time.Millisecond))
	if failed {
		line += " (failed)"
	}
	return line
}
