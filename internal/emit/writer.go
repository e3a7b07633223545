package emit

import "strings"

// writer accumulates indented lines.
type writer struct {
	sb    strings.Builder
	depth int
}

func (w *writer) line(s string) {
	if s != "" {
		for _, l := range strings.Split(s, "\n") {
			w.sb.WriteString(strings.Repeat("\t", w.depth))
			w.sb.WriteString(l)
			w.sb.WriteByte('\n')
		}
		return
	}
	w.sb.WriteByte('\n')
}

func (w *writer) field(name, value string) {
	w.line(name + ": " + value + ",")
}

func (w *writer) open(s string) {
	w.line(s)
	w.depth++
}

func (w *writer) close(s string) {
	w.depth--
	w.line(s)
}

func (w *writer) String() string {
	return w.sb.String()
}
