package ldoc

import (
	"strings"

	"ldc/utils/debug"
)

// String returns a readable dump of the document. It omits binary payloads to
// keep the output compact while preserving character data via escaped control
// sequences. It exists solely for manual inspection during debugging.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Document version=%d describe=%t", d.Version, d.Describe)
	for i, t := range d.Meta {
		tw.Line(1, "Term[%d] %s=%q", i, t.Name, t.Values)
	}
	for i := range d.Lines {
		l := &d.Lines[i]
		switch l.Kind {
		case LineKindText:
			tw.Line(1, "Line[%d] text flags=%s", i, l.flagString())
			tw.TextBlock(2, "Text", l.Text)
		case LineKindBlob:
			tw.Line(1, "Line[%d] blob mediaType=%q bytes=%d", i, l.MediaType, len(l.Data))
		case LineKindTable:
			tw.Line(1, "Line[%d] table columns=%d", i, l.Columns)
		case LineKindDestination:
			tw.Line(1, "Line[%d] destination dest=%s header=%t", i, l.Dest, l.Header)
		default:
			tw.Line(1, "Line[%d] %s content=%q align=%s break=%t reset=%t", i, l.Kind, l.Content, l.Align, l.Break, l.Reset)
		}
	}
	return tw.String()
}

func (l *Line) flagString() string {
	var flags []string
	for _, f := range []struct {
		set  bool
		name string
	}{
		{l.Italic, "italic"},
		{l.Bold, "bold"},
		{l.Underline, "underline"},
		{l.Strikeout, "strikeout"},
		{l.Mono, "mono"},
		{l.Super, "super"},
		{l.Sub, "sub"},
		{l.Reset, "reset"},
	} {
		if f.set {
			flags = append(flags, f.name)
		}
	}
	if len(flags) == 0 {
		return "none"
	}
	return strings.Join(flags, ",")
}
