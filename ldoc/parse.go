package ldoc

import (
	"bytes"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"
	"go.uber.org/zap"
)

// Parse reads a YAML line document from r and validates it.
func Parse(r io.Reader, log *zap.Logger) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read document: %w", err)
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	// accept only fields we defined
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("unable to decode document: %w", err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	log.Debug("Parsed line document", zap.Int("lines", len(doc.Lines)), zap.Int("terms", len(doc.Meta)))
	return &doc, nil
}

// ParseFile reads a YAML line document from the file at path.
func ParseFile(path string, log *zap.Logger) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open document: %w", err)
	}
	defer f.Close()
	return Parse(f, log)
}

func (d *Document) validate() error {
	if d.Version != 1 {
		return fmt.Errorf("unsupported document version %d", d.Version)
	}
	for i, l := range d.Lines {
		if !l.Kind.IsValid() {
			return fmt.Errorf("line %d: unknown kind %d", i, int(l.Kind))
		}
		switch l.Kind {
		case LineKindLink, LineKindAnchor, LineKindHint:
			if len(l.Content) == 0 {
				return fmt.Errorf("line %d: %s line requires content", i, l.Kind)
			}
		case LineKindBlob:
			if len(l.Data) == 0 {
				return fmt.Errorf("line %d: blob line requires data", i)
			}
		case LineKindTable:
			if l.Columns < 1 {
				return fmt.Errorf("line %d: table line requires a positive column count", i)
			}
		case LineKindDestination:
			if !l.Dest.IsValid() {
				return fmt.Errorf("line %d: unknown destination %d", i, int(l.Dest))
			}
		}
	}
	return nil
}
