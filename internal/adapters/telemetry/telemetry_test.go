package telemetry_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/devbuild/internal/adapters/telemetry"
	"go.trai.ch/devbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestProvider_TimingsDisabledByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	p := telemetry.NewProvider(log)
	t.Cleanup(func() { _ = p.Shutdown(t.Context()) })

	_, span := p.Tracer().Start(t.Context(), "build vue")
	span.SetAttribute("devbuild.target", "vue")
	span.End()
}

func TestProvider_TimingsEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var lines []string
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) { lines = append(lines, msg) }).Times(2)

	p := telemetry.NewProvider(log)
	t.Cleanup(func() { _ = p.Shutdown(t.Context()) })
	p.SetTimings(true)

	tracer := p.Tracer()

	_, ok := tracer.Start(t.Context(), "build vue")
	ok.SetAttribute("devbuild.errors", 0)
	ok.SetAttribute("devbuild.ratio", 0.5)
	ok.SetAttribute("devbuild.tags", []string{"a"})
	ok.SetAttribute("devbuild.other", struct{}{})
	ok.End()

	_, failed := tracer.Start(t.Context(), "build reactivity")
	failed.RecordError(errors.New("syntax error"))
	failed.End()

	require.Len(t, lines, 2)
	assert.True(t, strings.Contains(lines[0], "build vue in "), lines[0])
	assert.NotContains(t, lines[0], "(failed)")
	assert.True(t, strings.HasSuffix(lines[1], "(failed)"), lines[1])
}

func TestFormatTiming(t *testing.T) {
	assert.Equal(t, "◷ build vue in 1.235s", telemetry.FormatTiming("build vue", 1234567890*time.Nanosecond, false))
	assert.Equal(t, "◷ build vue in 12ms (failed)", telemetry.FormatTiming("build vue", 12*time.Millisecond, true))
}
