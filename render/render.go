// Package render compiles a line document into an HTML tree. The pass walks
// the line stream exactly once, dispatching on line kind and mutating the
// shared render context, then removes empty structural nodes and hands the
// finished tree to the caller.
package render

import (
	"context"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"ldc/config"
	"ldc/ldoc"
)

// Options control document level output features. All fields are optional.
type Options struct {
	// BodyOnly makes the body element the document root, skipping the html
	// and head scaffolding.
	BodyOnly bool
	// AutoHeading inserts a top level heading built from the title metadata.
	AutoHeading bool
	// BodyClasses are added to the body element.
	BodyClasses []string
	// Stylesheets are emitted as external stylesheet links.
	Stylesheets []string
	// ExtraCSS is appended to the embedded stylesheet. Callers are expected
	// to validate it first, see the css package.
	ExtraCSS []byte
	// Lang is a BCP-47 tag for the html element, ignored when invalid.
	Lang string
	// Images controls processing of embedded binary images.
	Images config.ImagesConfig
}

// Render compiles the document into an HTML tree.
func Render(ctx context.Context, doc *ldoc.Document, opts Options, log *zap.Logger) (*etree.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	tree, body := newShell(doc, &opts, log)

	p := newPass(body, &opts.Images, log)
	p.openInitialSection(doc, &opts)

	for i := range doc.Lines {
		line := &doc.Lines[i]
		if line.Reset {
			p.link, p.hint = nil, ""
		}

		var err error
		switch line.Kind {
		case ldoc.LineKindText:
			err = p.textLine(line)
		case ldoc.LineKindSection:
			p.sectionLine(line)
		case ldoc.LineKindParagraph:
			err = p.paragraphLine(line)
		case ldoc.LineKindHint:
			p.hint = line.Content
		case ldoc.LineKindLink:
			err = p.linkLine(line)
		case ldoc.LineKindAnchor:
			err = p.anchorLine(line)
		case ldoc.LineKindBlob:
			p.blobLine(line)
		case ldoc.LineKindImage:
			err = p.imageLine(line)
		case ldoc.LineKindTable:
			err = p.tableLine(line)
		case ldoc.LineKindDestination:
			err = p.destinationLine(line)
		default:
			err = renderErrorf("unknown line kind %d at line %d", int(line.Kind), i)
		}
		if err != nil {
			return nil, err
		}
	}

	cleanup(body)
	return tree, nil
}

// RenderString compiles the document and serializes the tree with indentation.
func RenderString(ctx context.Context, doc *ldoc.Document, opts Options, log *zap.Logger) (string, error) {
	tree, err := Render(ctx, doc, opts, log)
	if err != nil {
		return "", err
	}
	tree.Indent(2)
	return tree.WriteToString()
}

// openInitialSection prepares the implicit first section so content may
// appear before any explicit section line. A later section line discards it
// again when it stays empty.
func (p *pass) openInitialSection(doc *ldoc.Document, opts *Options) {
	p.section = p.body.CreateElement("section")
	if !opts.AutoHeading {
		return
	}
	if titles := doc.Terms("title"); len(titles) > 0 {
		h := p.section.CreateElement("h1")
		h.SetText(strings.Join(titles, ", "))
	}
}
