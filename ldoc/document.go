package ldoc

// Term is one metadata entry. Terms are repeatable and ordered, the same name
// may appear several times.
type Term struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// Document is a fully materialized line document.
type Document struct {
	Version  int    `yaml:"version"`
	Describe bool   `yaml:"describe,omitempty"`
	Meta     []Term `yaml:"meta,omitempty"`
	Lines    []Line `yaml:"lines"`
}

// Terms returns all values recorded under the given metadata name, preserving
// document order across repeated entries. Returns nil when the name is absent.
func (d *Document) Terms(name string) []string {
	var values []string
	for _, t := range d.Meta {
		if t.Name == name {
			values = append(values, t.Values...)
		}
	}
	return values
}

// SetTerm replaces every entry recorded under the given name with a single
// entry holding the provided values.
func (d *Document) SetTerm(name string, values ...string) {
	kept := d.Meta[:0]
	for _, t := range d.Meta {
		if t.Name != name {
			kept = append(kept, t)
		}
	}
	d.Meta = append(kept, Term{Name: name, Values: values})
}
