package pipeline

import (
	"regexp"
	"strings"
)

// nodeBuiltins are the core modules a browser build may reference from
// branches that are dead in the browser.
var nodeBuiltins = []string{
	"assert", "async_hooks", "buffer", "child_process", "cluster", "console",
	"constants", "crypto", "dgram", "diagnostics_channel", "dns", "domain",
	"events", "fs", "fs/promises", "http", "http2", "https", "inspector",
	"module", "net", "os", "path", "perf_hooks", "process", "punycode",
	"querystring", "readline", "repl", "stream", "stream/promises",
	"string_decoder", "sys", "timers", "tls", "tty", "url", "util", "v8",
	"vm", "worker_threads", "zlib",
}

const emptyShim = "module.exports = {};\n"

var shims = map[string]string{
	"process": `module.exports = {
  env: {},
  argv: [],
  platform: "browser",
  cwd: function () { return "/"; },
  nextTick: function (fn) {
    var args = Array.prototype.slice.call(arguments, 1);
    Promise.resolve().then(function () { fn.apply(null, args); });
  },
};
`,
	"events": `function EventEmitter() {}
EventEmitter.prototype.on = function () { return this; };
EventEmitter.prototype.off = function () { return this; };
EventEmitter.prototype.emit = function () { return false; };
module.exports = EventEmitter;
module.exports.EventEmitter = EventEmitter;
`,
}

// PolyfillNode replaces Node built-in imports with browser-safe stub modules.
type PolyfillNode struct {
	filter   string
	builtins map[string]struct{}
}

// NewPolyfillNode creates the built-in shim.
func NewPolyfillNode() *PolyfillNode {
	quoted := make([]string, len(nodeBuiltins))
	builtins := make(map[string]struct{}, len(nodeBuiltins))
	for i, name := range nodeBuiltins {
		quoted[i] = regexp.QuoteMeta(name)
		builtins[name] = struct{}{}
	}

	return &PolyfillNode{
		filter:   `^(node:)?(` + strings.Join(quoted, "|") + `)$`,
		builtins: builtins,
	}
}

// Name implements domain.Plugin.
func (p *PolyfillNode) Name() string { return "polyfill-node" }

// Filter matches bare and "node:" prefixed built-in specifiers.
func (p *PolyfillNode) Filter() string { return p.filter }

// Shim returns the stub source for a built-in import path.
func (p *PolyfillNode) Shim(path string) (string, bool) {
	name := strings.TrimPrefix(path, "node:")
	if _, ok := p.builtins[name]; !ok {
		return "", false
	}
	if src, ok := shims[name]; ok {
		return src, true
	}
	return emptyShim, true
}
