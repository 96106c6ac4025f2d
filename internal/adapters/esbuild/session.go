package esbuild

import (
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/devbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// session wraps an esbuild build context.
type session struct {
	target   string
	ctx      api.BuildContext
	disposed sync.Once
}

// Watch starts esbuild's watch mode, which runs the initial build in the background.
func (s *session) Watch() error {
	if err := s.ctx.Watch(api.WatchOptions{}); err != nil {
		wrapped := zerr.Wrap(domain.ErrEngineWatchFailed, err.Error())
		return zerr.With(wrapped, "target", s.target)
	}
	return nil
}

// Dispose stops watching and frees the context. It is safe to call more than once.
func (s *session) Dispose() {
	s.disposed.Do(s.ctx.Dispose)
}
