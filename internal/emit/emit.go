// Package emit renders a finalized configuration document as a webpack
// configuration module.
package emit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/specialistvlad/packinit/internal/ctxlog"
	"github.com/specialistvlad/packinit/internal/webpack"
)

// Filename returns the config file name for a document, for example
// webpack.dev.js.
func Filename(doc webpack.Document) string {
	name := doc.ConfigName
	if name == "" {
		name = "config"
	}
	return "webpack." + name + ".js"
}

// WriteFile renders doc into dir and returns the written path.
func WriteFile(ctx context.Context, dir string, doc webpack.Document) (string, error) {
	path := filepath.Join(dir, Filename(doc))
	if err := os.WriteFile(path, Render(doc), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Webpack config written.", "path", path)
	return path, nil
}

// Render produces the JavaScript source for doc.
func Render(doc webpack.Document) []byte {
	w := &writer{}
	for _, line := range doc.TopScope {
		if line == "\n" {
			w.line("")
			continue
		}
		w.line(line)
	}
	w.line("")

	o := doc.Options
	w.open("module.exports = {")
	if o.Mode != "" {
		w.field("mode", quote(string(o.Mode)))
	}
	if !o.Entry.IsZero() {
		renderEntry(w, o.Entry)
	}
	if o.Output != nil {
		w.open("output: {")
		w.field("filename", quote(o.Output.Filename))
		if o.Output.ChunkFilename != "" {
			w.field("chunkFilename", quote(o.Output.ChunkFilename))
		}
		w.field("path", string(o.Output.Path))
		w.close("},")
	}

	w.open("plugins: [")
	for _, p := range o.Plugins {
		w.line(string(p.Expr()) + ",")
	}
	w.close("],")

	w.open("module: {")
	w.open("rules: [")
	for _, r := range o.Module.Rules {
		renderRule(w, r)
	}
	w.close("]")
	w.close("},")

	if o.Optimization != nil && o.Optimization.SplitChunks != nil {
		renderSplitChunks(w, o.Optimization.SplitChunks)
	}
	w.close("};")
	return []byte(w.String())
}

func renderEntry(w *writer, e *webpack.Entry) {
	if e.Single != "" {
		w.field("entry", value(e.Single))
		return
	}
	w.open("entry: {")
	for _, p := range e.Named {
		w.field(key(p.Name), value(p.Location))
	}
	w.close("},")
}

func renderRule(w *writer, r webpack.Rule) {
	w.open("{")
	w.field("test", string(r.Test))
	if len(r.Include) > 0 {
		parts := make([]string, len(r.Include))
		for i, e := range r.Include {
			parts[i] = string(e)
		}
		w.field("include", "["+strings.Join(parts, ", ")+"]")
	}
	if r.Loader != "" {
		w.field("loader", quote(r.Loader))
	}
	renderOptions(w, r.Options)
	if len(r.Use) > 0 {
		w.open("use: [")
		for _, l := range r.Use {
			w.open("{")
			if l.Ref {
				w.field("loader", l.Loader)
			} else {
				w.field("loader", quote(l.Loader))
			}
			renderOptions(w, l.Options)
			w.close("},")
		}
		w.close("]")
	}
	w.close("},")
}

func renderOptions(w *writer, o *webpack.LoaderOptions) {
	if o == nil {
		return
	}
	w.open("options: {")
	if o.SourceMap {
		w.field("sourceMap", "true")
	}
	if o.ImportLoaders != 0 {
		w.field("importLoaders", strconv.Itoa(o.ImportLoaders))
	}
	if o.Plugins != "" {
		w.field("plugins", string(o.Plugins))
	}
	if o.Presets != "" {
		w.field("presets", string(o.Presets))
	}
	w.close("},")
}

func renderSplitChunks(w *writer, sc *webpack.SplitChunks) {
	w.open("optimization: {")
	w.open("splitChunks: {")
	w.field("chunks", quote(sc.Chunks))
	w.field("minSize", strconv.Itoa(sc.MinSize))
	w.field("minChunks", strconv.Itoa(sc.MinChunks))
	w.field("name", strconv.FormatBool(sc.Name))
	w.open("cacheGroups: {")
	names := make([]string, 0, len(sc.CacheGroups))
	for n := range sc.CacheGroups {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		g := sc.CacheGroups[n]
		w.open(key(n) + ": {")
		w.field("test", string(g.Test))
		w.field("priority", strconv.Itoa(g.Priority))
		w.close("},")
	}
	w.close("}")
	w.close("}")
	w.close("}")
}

func quote(s string) string {
	return webpack.Quote(s)
}

func value(s string) string {
	if webpack.IsExpression(s) || strings.HasPrefix(s, "'") {
		return s
	}
	return quote(s)
}

// key renders an object key, quoting anything that is not a plain
// identifier.
func key(s string) string {
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		return quote(s)
	}
	for _, r := range s {
		if !(r == '_' || r == '$' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return quote(s)
		}
	}
	return s
}
