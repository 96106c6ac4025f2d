package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/devbuild/internal/adapters/manifest"
	"go.trai.ch/devbuild/internal/core/domain"
	"go.trai.ch/devbuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestFileName), []byte(content), domain.FilePerm))
}

func TestReader_Read(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{
		"name": "@vue/reactivity",
		"version": "3.5.0",
		"dependencies": {"@vue/shared": "^3.0.0"},
		"buildOptions": {"name": "VueReactivity", "formats": ["cjs", "global"]}
	}`)

	r := manifest.NewReader(mocks.NewMockLogger(gomock.NewController(t)))
	m, err := r.Read(dir)
	require.NoError(t, err)

	assert.Equal(t, "@vue/reactivity", m.Name)
	assert.Equal(t, "3.5.0", m.Version)
	assert.Equal(t, []string{"@vue/shared"}, m.DependencyNames())
	assert.Equal(t, "VueReactivity", m.BuildOptions.Name)
	assert.Equal(t, []string{"cjs", "global"}, m.BuildOptions.Formats)
	assert.False(t, m.BuildOptions.EnableNonBrowserBranches)
}

func TestReader_Read_NotFound(t *testing.T) {
	r := manifest.NewReader(nil)

	_, err := r.Read(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestReader_Read_Unreadable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, domain.ManifestFileName), domain.DirPerm))

	_, err := manifest.NewReader(nil).Read(dir)
	require.ErrorIs(t, err, domain.ErrManifestReadFailed)
	assert.NotErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestReader_Read_ParseFailed(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"name": `)

	_, err := manifest.NewReader(nil).Read(dir)
	require.ErrorIs(t, err, domain.ErrManifestParseFailed)
}

func TestReader_Read_WarnsOnNonSemverVersion(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"name": "vue", "version": "next"}`)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	m, err := manifest.NewReader(log).Read(dir)
	require.NoError(t, err)
	assert.Equal(t, "next", m.Version)
}

func TestReader_ReadDependency_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "node_modules", "@vue", "consolidate"), `{
		"name": "@vue/consolidate",
		"version": "1.0.0",
		"devDependencies": {"pug": "^3.0.0", "ejs": "^3.0.0"}
	}`)
	from := filepath.Join(root, "packages", "compiler-sfc")
	require.NoError(t, os.MkdirAll(from, domain.DirPerm))

	m, err := manifest.NewReader(nil).ReadDependency(from, "@vue/consolidate")
	require.NoError(t, err)
	assert.Equal(t, []string{"ejs", "pug"}, m.DevDependencyNames())
}

func TestReader_ReadDependency_NearestWins(t *testing.T) {
	root := t.TempDir()
	from := filepath.Join(root, "packages", "compiler-sfc")
	writeManifest(t, filepath.Join(root, "node_modules", "pkg"), `{"name": "pkg", "version": "1.0.0"}`)
	writeManifest(t, filepath.Join(from, "node_modules", "pkg"), `{"name": "pkg", "version": "2.0.0"}`)

	m, err := manifest.NewReader(nil).ReadDependency(from, "pkg")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", m.Version)
}

func TestReader_ReadDependency_Unresolved(t *testing.T) {
	from := filepath.Join(t.TempDir(), "packages", "compiler-sfc")
	require.NoError(t, os.MkdirAll(from, domain.DirPerm))

	_, err := manifest.NewReader(nil).ReadDependency(from, "@vue/not-installed-anywhere")
	require.ErrorIs(t, err, domain.ErrDependencyManifestUnresolved)
}

func TestReader_ReadDependency_Unreadable(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, filepath.Join(root, "node_modules", "broken"), `not json`)

	_, err := manifest.NewReader(nil).ReadDependency(root, "broken")
	require.ErrorIs(t, err, domain.ErrDependencyManifestUnresolved)
}

func TestReader_PrivateTargets(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"template-explorer", "dts-test", "sfc-playground"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), domain.DirPerm))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("x"), domain.FilePerm))

	names, err := manifest.NewReader(nil).PrivateTargets(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"dts-test", "sfc-playground", "template-explorer"}, names)
}

func TestReader_PrivateTargets_MissingRoot(t *testing.T) {
	names, err := manifest.NewReader(nil).PrivateTargets(filepath.Join(t.TempDir(), "packages-private"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestReader_PrivateTargets_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "packages-private")
	require.NoError(t, os.WriteFile(file, []byte("x"), domain.FilePerm))

	_, err := manifest.NewReader(nil).PrivateTargets(file)
	require.ErrorIs(t, err, domain.ErrPrivateTargetsReadFailed)
}
