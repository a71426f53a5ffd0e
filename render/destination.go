package render

import (
	"github.com/beevik/etree"

	"ldc/ldoc"
)

// resolveNode returns the node new content attaches to under the current
// destination state. The tree may gain children between lines, so resolution
// is recomputed on every access and never cached - a stale node reference
// across mutating lines is a correctness hazard.
func (p *pass) resolveNode() (*etree.Element, error) {
	switch p.dest {
	case ldoc.DestinationBody:
		if last := lastChildElement(p.section, "p"); last != nil {
			return last, nil
		}
		return p.section.CreateElement("p"), nil

	case ldoc.DestinationNote:
		aside := lastChildElement(p.section, "aside")
		if aside == nil {
			return nil, renderErrorf("note destination without a footnote in current section")
		}
		if last := lastChildElement(aside, "p"); last != nil {
			return last, nil
		}
		return aside.CreateElement("p"), nil

	case ldoc.DestinationCell:
		cell := lastDescendant(p.section, "td", "th")
		if cell == nil {
			return nil, renderErrorf("cell destination without a cell in current section")
		}
		if last := lastChildElement(cell, "aside", "p"); last != nil {
			return last, nil
		}
		return cell, nil

	case ldoc.DestinationHead:
		if last := lastChildElement(p.section, "h1"); last != nil {
			return last, nil
		}
		return p.section.CreateElement("h1"), nil
	}
	// unreachable under the closed enum, defensive check only
	return nil, renderErrorf("unknown destination state %d", int(p.dest))
}

// nearestContainer walks up from node to the closest element paragraphs may
// be appended to - a footnote, a table cell or the section itself.
func nearestContainer(node *etree.Element) *etree.Element {
	for el := node; el != nil; el = el.Parent() {
		switch el.Tag {
		case "aside", "td", "th", "section":
			return el
		}
	}
	return node
}
