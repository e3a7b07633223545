package store

import (
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/packinit/internal/webpack"
	"github.com/zclconf/go-cty/cty"
)

func encodeHCL(doc webpack.Document) []byte {
	f := hclwrite.NewEmptyFile()
	cfg := f.Body().AppendNewBlock("configuration", nil).Body()

	cfg.SetAttributeValue("config_name", cty.StringVal(doc.ConfigName))
	cfg.SetAttributeValue("top_scope", stringList(doc.TopScope))
	cfg.SetAttributeValue("dependencies", stringList(doc.Dependencies))

	opts := cfg.AppendNewBlock("webpack_options", nil).Body()
	o := doc.Options
	if o.Mode != "" {
		opts.SetAttributeValue("mode", cty.StringVal(string(o.Mode)))
	}

	if !o.Entry.IsZero() {
		eb := opts.AppendNewBlock("entry", nil).Body()
		if o.Entry.Single != "" {
			eb.SetAttributeValue("single", cty.StringVal(o.Entry.Single))
		}
		for _, p := range o.Entry.Named {
			eb.AppendNewBlock("point", []string{p.Name}).Body().
				SetAttributeValue("location", cty.StringVal(p.Location))
		}
	}

	if o.Output != nil {
		ob := opts.AppendNewBlock("output", nil).Body()
		ob.SetAttributeValue("filename", cty.StringVal(o.Output.Filename))
		if o.Output.ChunkFilename != "" {
			ob.SetAttributeValue("chunk_filename", cty.StringVal(o.Output.ChunkFilename))
		}
		ob.SetAttributeValue("path", cty.StringVal(string(o.Output.Path)))
	}

	for _, r := range o.Module.Rules {
		rb := opts.AppendNewBlock("rule", nil).Body()
		rb.SetAttributeValue("test", cty.StringVal(string(r.Test)))
		if len(r.Include) > 0 {
			inc := make([]string, len(r.Include))
			for i, e := range r.Include {
				inc[i] = string(e)
			}
			rb.SetAttributeValue("include", stringList(inc))
		}
		if r.Loader != "" {
			rb.SetAttributeValue("loader", cty.StringVal(r.Loader))
		}
		writeLoaderOptions(rb, r.Options)
		for _, l := range r.Use {
			ub := rb.AppendNewBlock("use", []string{l.Loader}).Body()
			if l.Ref {
				ub.SetAttributeValue("ref", cty.True)
			}
			writeLoaderOptions(ub, l.Options)
		}
	}

	plugins := make([]string, len(o.Plugins))
	for i, p := range o.Plugins {
		plugins[i] = string(p.Expr())
	}
	opts.SetAttributeValue("plugins", stringList(plugins))

	if o.Optimization != nil && o.Optimization.SplitChunks != nil {
		sc := o.Optimization.SplitChunks
		sb := opts.AppendNewBlock("optimization", nil).Body().AppendNewBlock("split_chunks", nil).Body()
		sb.SetAttributeValue("chunks", cty.StringVal(sc.Chunks))
		sb.SetAttributeValue("min_size", cty.NumberIntVal(int64(sc.MinSize)))
		sb.SetAttributeValue("min_chunks", cty.NumberIntVal(int64(sc.MinChunks)))
		sb.SetAttributeValue("name", cty.BoolVal(sc.Name))

		names := make([]string, 0, len(sc.CacheGroups))
		for n := range sc.CacheGroups {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			g := sc.CacheGroups[n]
			gb := sb.AppendNewBlock("cache_group", []string{n}).Body()
			gb.SetAttributeValue("test", cty.StringVal(string(g.Test)))
			gb.SetAttributeValue("priority", cty.NumberIntVal(int64(g.Priority)))
		}
	}
	return f.Bytes()
}

func writeLoaderOptions(b *hclwrite.Body, o *webpack.LoaderOptions) {
	if o == nil {
		return
	}
	attrs := map[string]cty.Value{}
	if o.SourceMap {
		attrs["source_map"] = cty.True
	}
	if o.ImportLoaders != 0 {
		attrs["import_loaders"] = cty.NumberIntVal(int64(o.ImportLoaders))
	}
	if o.Plugins != "" {
		attrs["plugins"] = cty.StringVal(string(o.Plugins))
	}
	if o.Presets != "" {
		attrs["presets"] = cty.StringVal(string(o.Presets))
	}
	if len(attrs) == 0 {
		return
	}
	b.SetAttributeValue("options", cty.ObjectVal(attrs))
}

func stringList(ss []string) cty.Value {
	if len(ss) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(ss))
	for i, s := range ss {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}
