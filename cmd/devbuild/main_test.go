package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/devbuild/internal/adapters/logger"
	"go.trai.ch/devbuild/internal/adapters/telemetry"
	"go.trai.ch/devbuild/internal/app"
	"go.trai.ch/devbuild/internal/core/domain"
	"go.trai.ch/devbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    app.New(mocks.NewMockLayoutLoader(ctrl), mocks.NewMockManifestReader(ctrl), mocks.NewMockBundler(ctrl), mockLogger, nil),
			Logger: mockLogger,
		}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"--version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"vue"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_MissingManifestExitsWithError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	layout := domain.DefaultLayout(root)

	layouts := mocks.NewMockLayoutLoader(ctrl)
	layouts.EXPECT().Load(root).Return(&layout, nil)

	reader := mocks.NewMockManifestReader(ctrl)
	reader.EXPECT().PrivateTargets(gomock.Any()).Return(nil, nil)
	reader.EXPECT().Read(filepath.Join(root, "packages", "nope")).
		Return(nil, domain.ErrManifestNotFound)

	bundler := mocks.NewMockBundler(ctrl)
	log := logger.New()

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    app.New(layouts, reader, bundler, log, nil),
			Logger: log,
		}, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"nope"}, stderr, provider, func(a *app.App) {
		a.WithWorkingDir(root)
	})

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "manifest not found")
	assert.NoDirExists(t, filepath.Join(root, "packages", "nope", "dist"))
}

func TestRun_CancelledContextExitsCleanly(t *testing.T) {
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	layout := domain.DefaultLayout(root)

	layouts := mocks.NewMockLayoutLoader(ctrl)
	layouts.EXPECT().Load(root).Return(&layout, nil)

	reader := mocks.NewMockManifestReader(ctrl)
	reader.EXPECT().PrivateTargets(gomock.Any()).Return(nil, nil)
	reader.EXPECT().Read(gomock.Any()).Return(&domain.Manifest{Name: "vue"}, nil)

	session := mocks.NewMockSession(ctrl)
	session.EXPECT().Watch().Return(nil)
	session.EXPECT().Dispose()

	bundler := mocks.NewMockBundler(ctrl)
	bundler.EXPECT().Context(gomock.Any(), gomock.Any()).Return(session, nil)

	log := mocks.NewMockLogger(ctrl)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    app.New(layouts, reader, bundler, log, nil),
			Logger: log,
		}, func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	exitCode := run(ctx, []string{}, os.Stderr, provider, func(a *app.App) {
		a.WithWorkingDir(root)
	})
	assert.Equal(t, 0, exitCode)
}

func TestShutdown_StopsTelemetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	provider := telemetry.NewProvider(log)
	provider.SetTimings(true)

	shutdown(t.Context(), &app.Components{Logger: log, Telemetry: provider})()

	// A stopped provider hands out no-op spans, so nothing reaches the logger.
	_, span := provider.Tracer().Start(t.Context(), "build vue")
	span.End()
}

func TestShutdown_WithoutTelemetry(t *testing.T) {
	assert.NotPanics(t, shutdown(t.Context(), &app.Components{}))
}
