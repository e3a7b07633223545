package webpack

import (
	"fmt"
	"strings"
)

// Mode is the webpack build profile.
type Mode string

const (
	Development Mode = "development"
	Production  Mode = "production"
)

// Expr is a JavaScript expression emitted verbatim into the generated config.
type Expr string

// EntryPoint is one named entry bundle.
type EntryPoint struct {
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
}

// Entry is either a single entry path or an ordered name-to-path mapping.
type Entry struct {
	Single string       `json:"single,omitempty" yaml:"single,omitempty"`
	Named  []EntryPoint `json:"named,omitempty" yaml:"named,omitempty"`
}

// IsZero reports whether the entry carries neither a path nor a mapping.
func (e *Entry) IsZero() bool {
	return e == nil || (e.Single == "" && len(e.Named) == 0)
}

// Output is the webpack output block.
type Output struct {
	Filename      string `json:"filename" yaml:"filename"`
	ChunkFilename string `json:"chunkFilename,omitempty" yaml:"chunkFilename,omitempty"`
	Path          Expr   `json:"path" yaml:"path"`
}

// LoaderOptions are the options a loader accepts in the generated config.
type LoaderOptions struct {
	SourceMap     bool `json:"sourceMap,omitempty" yaml:"sourceMap,omitempty"`
	ImportLoaders int  `json:"importLoaders,omitempty" yaml:"importLoaders,omitempty"`
	Plugins       Expr `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	Presets       Expr `json:"presets,omitempty" yaml:"presets,omitempty"`
}

// Loader references one loader in a rule's use chain. Ref marks loaders
// given as a JavaScript reference (MiniCssExtractPlugin.loader) rather
// than a package name.
type Loader struct {
	Loader  string         `json:"loader" yaml:"loader"`
	Ref     bool           `json:"ref,omitempty" yaml:"ref,omitempty"`
	Options *LoaderOptions `json:"options,omitempty" yaml:"options,omitempty"`
}

// Rule is a module rule: a file matcher plus either a single loader or an
// ordered use chain. Use entries apply right-to-left in webpack, so their
// order is significant.
type Rule struct {
	Test    Expr           `json:"test" yaml:"test"`
	Include []Expr         `json:"include,omitempty" yaml:"include,omitempty"`
	Loader  string         `json:"loader,omitempty" yaml:"loader,omitempty"`
	Options *LoaderOptions `json:"options,omitempty" yaml:"options,omitempty"`
	Use     []Loader       `json:"use,omitempty" yaml:"use,omitempty"`
}

// Plugin is a plugin constructor invocation. Filename is the only argument
// any generated plugin takes.
type Plugin struct {
	Constructor string `json:"constructor" yaml:"constructor"`
	Filename    string `json:"filename,omitempty" yaml:"filename,omitempty"`
}

// Expr renders the constructor call.
func (p Plugin) Expr() Expr {
	if p.Filename == "" {
		return Expr(fmt.Sprintf("new %s()", p.Constructor))
	}
	return Expr(fmt.Sprintf("new %s({ filename:%s })", p.Constructor, Quote(p.Filename)))
}

// CacheGroup is a splitChunks cache group.
type CacheGroup struct {
	Test     Expr `json:"test" yaml:"test"`
	Priority int  `json:"priority" yaml:"priority"`
}

// SplitChunks mirrors optimization.splitChunks.
type SplitChunks struct {
	Chunks      string                `json:"chunks" yaml:"chunks"`
	MinSize     int                   `json:"minSize" yaml:"minSize"`
	MinChunks   int                   `json:"minChunks" yaml:"minChunks"`
	Name        bool                  `json:"name" yaml:"name"`
	CacheGroups map[string]CacheGroup `json:"cacheGroups" yaml:"cacheGroups"`
}

// Optimization is the optimization block.
type Optimization struct {
	SplitChunks *SplitChunks `json:"splitChunks,omitempty" yaml:"splitChunks,omitempty"`
}

// ModuleOptions holds module.rules.
type ModuleOptions struct {
	Rules []Rule `json:"rules" yaml:"rules"`
}

// Options is the structured webpack configuration.
type Options struct {
	Entry        *Entry        `json:"entry,omitempty" yaml:"entry,omitempty"`
	Output       *Output       `json:"output,omitempty" yaml:"output,omitempty"`
	Mode         Mode          `json:"mode,omitempty" yaml:"mode,omitempty"`
	Module       ModuleOptions `json:"module" yaml:"module"`
	Plugins      []Plugin      `json:"plugins" yaml:"plugins"`
	Optimization *Optimization `json:"optimization,omitempty" yaml:"optimization,omitempty"`
}

// Document is the configuration document produced by one init run.
type Document struct {
	ConfigName   string   `json:"configName" yaml:"configName"`
	Options      Options  `json:"webpackOptions" yaml:"webpackOptions"`
	TopScope     []string `json:"topScope" yaml:"topScope"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
}

// Production reports whether the document targets production mode.
func (d *Document) Production() bool {
	return d.Options.Mode == Production
}

// ResolvePath builds the output path expression for a directory name.
func ResolvePath(dir string) Expr {
	return Expr(fmt.Sprintf("path.resolve(__dirname, %s)", Quote(dir)))
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	"'", `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

// Quote renders s as a single-quoted JavaScript string literal.
func Quote(s string) string {
	return "'" + quoteReplacer.Replace(s) + "'"
}

// IsExpression reports whether a user-supplied location should be emitted
// as JavaScript rather than quoted as a string.
func IsExpression(s string) bool {
	if strings.HasPrefix(s, "(") || strings.HasPrefix(s, "[") {
		return true
	}
	for _, marker := range []string{"function", "path", "process"} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
