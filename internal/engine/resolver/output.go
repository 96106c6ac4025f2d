package resolver

import (
	"path/filepath"

	"go.trai.ch/devbuild/internal/core/domain"
)

// FileName returns the bundle file name "<base>.<postfix>[.prod].js".
func FileName(base string, format domain.Format, prod bool) string {
	name := base + "." + format.Postfix() + "."
	if prod {
		name += "prod."
	}
	return name + "js"
}

// ResolveOutput places the bundle under <dir>/dist. Relative is the path as seen
// from cwd; it falls back to the absolute path when no relative form exists.
func ResolveOutput(base, dir string, format domain.Format, prod bool, cwd string) domain.Output {
	file := filepath.Join(dir, domain.DistDirName, FileName(base, format, prod))

	rel, err := filepath.Rel(cwd, file)
	if err != nil {
		rel = file
	}

	return domain.Output{File: file, Relative: rel}
}
