package webpack

import "gopkg.in/yaml.v3"

// MarshalYAML writes expressions double-quoted. Matchers, function bodies
// and lone newlines then keep their exact bytes through a YAML round trip.
func (e Expr) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.DoubleQuotedStyle,
		Value: string(e),
	}, nil
}

type documentYAML struct {
	ConfigName   string   `yaml:"configName"`
	Options      Options  `yaml:"webpackOptions"`
	TopScope     []Expr   `yaml:"topScope"`
	Dependencies []string `yaml:"dependencies"`
}

// MarshalYAML writes topScope lines the way Expr values are written.
func (d Document) MarshalYAML() (any, error) {
	lines := make([]Expr, len(d.TopScope))
	for i, l := range d.TopScope {
		lines[i] = Expr(l)
	}
	return documentYAML{
		ConfigName:   d.ConfigName,
		Options:      d.Options,
		TopScope:     lines,
		Dependencies: d.Dependencies,
	}, nil
}
