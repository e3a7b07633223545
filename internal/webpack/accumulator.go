package webpack

import (
	"fmt"
	"slices"
)

// Accumulator owns a Document while the init flow builds it.
type Accumulator struct {
	doc       Document
	finalized bool
}

// New creates an accumulator seeded with the baseline dependencies.
func New(baseline ...string) *Accumulator {
	a := &Accumulator{
		doc: Document{
			Options: Options{
				Module: ModuleOptions{Rules: []Rule{}},
			},
			TopScope:     []string{},
			Dependencies: []string{},
		},
	}
	a.AddDependencies(baseline...)
	return a
}

func (a *Accumulator) mustBeOpen(op string) {
	if a.finalized {
		panic(fmt.Sprintf("webpack: %s called on a finalized document", op))
	}
}

// SetEntry records the entry. Callers skip it when no entry was resolved.
func (a *Accumulator) SetEntry(e Entry) {
	a.mustBeOpen("SetEntry")
	if a.doc.Options.Entry != nil {
		panic("webpack: entry already set")
	}
	a.doc.Options.Entry = &e
}

// HasEntry reports whether an entry has been recorded.
func (a *Accumulator) HasEntry() bool {
	return !a.doc.Options.Entry.IsZero()
}

// SetOutput records the output block.
func (a *Accumulator) SetOutput(o Output) {
	a.mustBeOpen("SetOutput")
	if a.doc.Options.Output != nil {
		panic("webpack: output already set")
	}
	a.doc.Options.Output = &o
}

// SetProfile fixes the mode, config name and initial plugin list. It may be
// called once.
func (a *Accumulator) SetProfile(mode Mode, configName string, plugins []Plugin) {
	a.mustBeOpen("SetProfile")
	if a.doc.Options.Mode != "" {
		panic("webpack: profile already set")
	}
	a.doc.Options.Mode = mode
	a.doc.ConfigName = configName
	a.doc.Options.Plugins = append([]Plugin{}, plugins...)
}

// Mode returns the profile mode, empty until SetProfile runs.
func (a *Accumulator) Mode() Mode {
	return a.doc.Options.Mode
}

// AddRule appends a module rule.
func (a *Accumulator) AddRule(r Rule) {
	a.mustBeOpen("AddRule")
	a.doc.Options.Module.Rules = append(a.doc.Options.Module.Rules, r)
}

// AddPlugin appends a plugin.
func (a *Accumulator) AddPlugin(p Plugin) {
	a.mustBeOpen("AddPlugin")
	a.doc.Options.Plugins = append(a.doc.Options.Plugins, p)
}

// AddTopScope appends preamble statements in the given order.
func (a *Accumulator) AddTopScope(lines ...string) {
	a.mustBeOpen("AddTopScope")
	a.doc.TopScope = append(a.doc.TopScope, lines...)
}

// AddDependencies appends packages not already present.
func (a *Accumulator) AddDependencies(names ...string) {
	a.mustBeOpen("AddDependencies")
	for _, n := range names {
		if !slices.Contains(a.doc.Dependencies, n) {
			a.doc.Dependencies = append(a.doc.Dependencies, n)
		}
	}
}

// RemoveDependency drops a package and reports whether it was present.
func (a *Accumulator) RemoveDependency(name string) bool {
	a.mustBeOpen("RemoveDependency")
	i := slices.Index(a.doc.Dependencies, name)
	if i < 0 {
		return false
	}
	a.doc.Dependencies = slices.Delete(a.doc.Dependencies, i, i+1)
	return true
}

// SetOptimization records the optimization block.
func (a *Accumulator) SetOptimization(o Optimization) {
	a.mustBeOpen("SetOptimization")
	a.doc.Options.Optimization = &o
}

// Snapshot returns an independent copy of the current document.
func (a *Accumulator) Snapshot() Document {
	return a.doc.Clone()
}

// Finalize seals the accumulator and returns the finished document.
func (a *Accumulator) Finalize() Document {
	a.mustBeOpen("Finalize")
	a.finalized = true
	return a.doc.Clone()
}

// Finalized reports whether Finalize has run.
func (a *Accumulator) Finalized() bool {
	return a.finalized
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	out := d
	out.TopScope = slices.Clone(d.TopScope)
	out.Dependencies = slices.Clone(d.Dependencies)

	if d.Options.Entry != nil {
		e := *d.Options.Entry
		e.Named = slices.Clone(e.Named)
		out.Options.Entry = &e
	}
	if d.Options.Output != nil {
		o := *d.Options.Output
		out.Options.Output = &o
	}
	if d.Options.Plugins != nil {
		out.Options.Plugins = slices.Clone(d.Options.Plugins)
	}
	out.Options.Module.Rules = make([]Rule, len(d.Options.Module.Rules))
	for i, r := range d.Options.Module.Rules {
		out.Options.Module.Rules[i] = r.clone()
	}
	if d.Options.Optimization != nil {
		opt := *d.Options.Optimization
		if opt.SplitChunks != nil {
			sc := *opt.SplitChunks
			sc.CacheGroups = make(map[string]CacheGroup, len(opt.SplitChunks.CacheGroups))
			for k, v := range opt.SplitChunks.CacheGroups {
				sc.CacheGroups[k] = v
			}
			opt.SplitChunks = &sc
		}
		out.Options.Optimization = &opt
	}
	return out
}

func (r Rule) clone() Rule {
	out := r
	out.Include = slices.Clone(r.Include)
	out.Options = r.Options.clone()
	if r.Use != nil {
		out.Use = make([]Loader, len(r.Use))
		for i, l := range r.Use {
			l.Options = l.Options.clone()
			out.Use[i] = l
		}
	}
	return out
}

func (o *LoaderOptions) clone() *LoaderOptions {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}
