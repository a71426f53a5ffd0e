// Package ldoc defines the line-document model: a flat, ordered stream of
// control and text lines plus document level metadata, as produced by an
// upstream parser or loaded from a YAML source.
package ldoc

//go:generate go tool go-enum --marshal --names

// Kind of a single line in the stream. Text carries inline content, all
// other kinds are control directives.
// ENUM(text, section, paragraph, hint, link, anchor, blob, image, table, destination)
type LineKind int

// Horizontal alignment requested for a section or paragraph.
// ENUM(none, left, center, right)
type Align int

// Insertion target for content following a destination directive.
// ENUM(body, note, cell, head)
type Destination int

// Line is a single record of the document stream. Field meaning depends on
// Kind, unused fields stay at zero values.
type Line struct {
	Kind LineKind `yaml:"kind"`

	// control line fields
	Content   string      `yaml:"content,omitempty"`
	Columns   int         `yaml:"columns,omitempty"`
	Align     Align       `yaml:"align,omitempty"`
	Break     bool        `yaml:"break,omitempty"`
	Dest      Destination `yaml:"dest,omitempty"`
	Header    bool        `yaml:"header,omitempty"`
	MediaType string      `yaml:"media_type,omitempty"`
	Data      []byte      `yaml:"data,omitempty"`

	// text line fields
	Text      string `yaml:"text,omitempty"`
	Italic    bool   `yaml:"italic,omitempty"`
	Bold      bool   `yaml:"bold,omitempty"`
	Underline bool   `yaml:"underline,omitempty"`
	Strikeout bool   `yaml:"strikeout,omitempty"`
	Mono      bool   `yaml:"mono,omitempty"`
	Super     bool   `yaml:"super,omitempty"`
	Sub       bool   `yaml:"sub,omitempty"`

	// applies to any line kind - drops pending link and tooltip before the
	// line itself is processed
	Reset bool `yaml:"reset,omitempty"`
}
