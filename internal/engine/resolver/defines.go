package resolver

import (
	"strconv"

	"go.trai.ch/devbuild/internal/core/domain"
)

// devCommit is substituted for the commit hash in development bundles.
const devCommit = "dev"

// featureFlags have fixed values in development builds.
var featureFlags = map[string]bool{
	"__FEATURE_SUSPENSE__":                        true,
	"__FEATURE_OPTIONS_API__":                     true,
	"__FEATURE_PROD_DEVTOOLS__":                   false,
	"__FEATURE_PROD_HYDRATION_MISMATCH_DETAILS__": true,
}

// Defines returns the compile-time constants substituted into the target's
// sources. Values are JavaScript source text.
func (r *Resolver) Defines(target domain.Target, flags domain.BuildFlags) map[string]string {
	f := flags.Format
	nonBrowser := target.Manifest.BuildOptions.EnableNonBrowserBranches

	defines := map[string]string{
		"__COMMIT__":      strconv.Quote(devCommit),
		"__VERSION__":     strconv.Quote(target.Manifest.Version),
		"__DEV__":         strconv.FormatBool(!flags.Production),
		"__TEST__":        strconv.FormatBool(false),
		"__BROWSER__":     strconv.FormatBool(!f.IsCJS() && !nonBrowser),
		"__GLOBAL__":      strconv.FormatBool(f.IsGlobal()),
		"__ESM_BUNDLER__": strconv.FormatBool(f.IsESMBundler()),
		"__ESM_BROWSER__": strconv.FormatBool(f.IsESMBrowser()),
		"__CJS__":         strconv.FormatBool(f.IsCJS()),
		"__SSR__":         strconv.FormatBool(!f.IsDefault()),
		"__COMPAT__":      strconv.FormatBool(target.Name == r.layout.CompatTarget),
	}
	for name, value := range featureFlags {
		defines[name] = strconv.FormatBool(value)
	}
	return defines
}
