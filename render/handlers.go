package render

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"ldc/ldoc"
)

// sectionLine opens a new section. A previous section that never received
// content is discarded so stray section lines do not litter the output.
func (p *pass) sectionLine(line *ldoc.Line) {
	p.link = nil
	p.dest = ldoc.DestinationBody

	if p.section != nil && len(p.section.ChildElements()) == 0 {
		p.body.RemoveChild(p.section)
	}

	if line.Break && lastChildElement(p.body, "section") != nil {
		p.body.CreateElement("hr")
	}

	p.section = p.body.CreateElement("section")
	if cls, ok := alignClasses[line.Align]; ok {
		addClass(p.section, cls)
	}
}

func (p *pass) paragraphLine(line *ldoc.Line) error {
	p.link = nil

	node, err := p.resolveNode()
	if err != nil {
		return err
	}

	par := nearestContainer(node).CreateElement("p")
	if cls, ok := alignClasses[line.Align]; ok {
		addClass(par, cls)
	}
	return nil
}

func (p *pass) linkLine(line *ldoc.Line) error {
	node, err := p.resolveNode()
	if err != nil {
		return err
	}

	a := node.CreateElement("a")
	a.CreateAttr("href", line.Content)
	if len(p.hint) > 0 {
		a.CreateAttr("title", p.hint)
		p.hint = ""
	}
	p.link = a
	return nil
}

func (p *pass) anchorLine(line *ldoc.Line) error {
	node, err := p.resolveNode()
	if err != nil {
		return err
	}

	a := node.CreateElement("a")
	a.CreateAttr("name", line.Content)
	return nil
}

func (p *pass) blobLine(line *ldoc.Line) {
	b := &blob{mediaType: line.MediaType, data: line.Data}
	b.detectMediaType(p.log)
	p.blob = b
}

func (p *pass) imageLine(line *ldoc.Line) error {
	node, err := p.resolveNode()
	if err != nil {
		return err
	}

	var src string
	switch {
	case len(line.Content) > 0:
		src = line.Content
	case p.blob != nil:
		p.blob.process(p.images, p.log)
		src = p.blob.dataURI()
		p.blob = nil
	default:
		return renderErrorf("no image content available")
	}

	img := node.CreateElement("img")
	img.CreateAttr("src", src)
	if len(p.hint) > 0 {
		img.CreateAttr("title", p.hint)
		p.hint = ""
	}
	return nil
}

// tableLine opens a new table in the current section and records its declared
// column count for later row wrapping decisions.
func (p *pass) tableLine(line *ldoc.Line) error {
	if line.Columns < 1 {
		return renderErrorf("table declared with no columns")
	}
	table := p.section.CreateElement("table")
	table.CreateAttr("data-columns", strconv.Itoa(line.Columns))
	return nil
}

func (p *pass) destinationLine(line *ldoc.Line) error {
	p.link = nil

	switch line.Dest {
	case ldoc.DestinationBody:
		// state change only

	case ldoc.DestinationNote:
		if err := p.openFootnote(); err != nil {
			return err
		}

	case ldoc.DestinationCell:
		if err := p.openCell(line.Header); err != nil {
			return err
		}

	case ldoc.DestinationHead:
		// headings always start a fresh section, independent of table and
		// note bookkeeping
		p.section = p.body.CreateElement("section")

	default:
		return renderErrorf("unknown destination state %d", int(line.Dest))
	}

	p.dest = line.Dest
	return nil
}

// openFootnote emits the paired forward and back reference anchors keyed by
// the same sequence number and prepares the footnote body for writing. The
// mirrored name/href values define in-document navigation and must match
// exactly.
func (p *pass) openFootnote() error {
	node, err := p.resolveNode()
	if err != nil {
		return err
	}

	n := p.noteIndex
	forward := node.CreateElement("a")
	forward.CreateAttr("name", fmt.Sprintf("note-return-%d", n))
	forward.CreateAttr("href", fmt.Sprintf("#note-%d", n))
	forward.CreateAttr("class", "to-note")
	forward.SetText(strconv.Itoa(n))

	aside := p.section.CreateElement("aside")
	back := aside.CreateElement("a")
	back.CreateAttr("name", fmt.Sprintf("note-%d", n))
	back.CreateAttr("href", fmt.Sprintf("#note-return-%d", n))
	back.CreateAttr("class", "from-note")

	p.noteIndex++
	p.log.Debug("Opened footnote", zap.Int("index", n))

	// initial write target for the footnote text
	aside.CreateElement("p")
	return nil
}

// openCell appends a cell to the most recently declared table, starting a new
// row when the declared column count is filled up.
func (p *pass) openCell(header bool) error {
	table := lastChildElement(p.section, "table")
	if table == nil {
		return renderErrorf("cell destination without a table in current section")
	}

	columns, err := strconv.Atoi(table.SelectAttrValue("data-columns", ""))
	if err != nil || columns < 1 {
		return renderErrorf("table declared with no columns")
	}

	rows := table.SelectElements("tr")
	cells := 0
	for _, row := range rows {
		cells += len(row.ChildElements())
	}

	var row *etree.Element
	if len(rows) == 0 || cells%columns == 0 {
		row = table.CreateElement("tr")
	} else {
		row = rows[len(rows)-1]
	}

	tag := "td"
	if header {
		tag = "th"
	}
	row.CreateElement(tag)
	return nil
}
