package render

import (
	"strings"

	"github.com/beevik/etree"

	"ldc/ldoc"
)

// textLine renders one text line at the resolved destination. Wrapping
// elements nest in a fixed order regardless of how flags are set on the line:
// em > strong > span carrying text decoration classes > sup > sub. Embedded
// line breaks split the text into fragments separated by br elements.
func (p *pass) textLine(line *ldoc.Line) error {
	node, err := p.resolveNode()
	if err != nil {
		return err
	}

	// inline content after an open link continues inside that same anchor
	if p.link != nil && isDescendantOrSelf(p.link, node) {
		node = p.link
	}

	node = wrapStyles(node, line)

	fragments := strings.Split(line.Text, "\n")
	for i, fragment := range fragments {
		if i > 0 {
			node.CreateElement("br")
		}
		node.CreateText(fragment)
	}
	return nil
}

func wrapStyles(node *etree.Element, line *ldoc.Line) *etree.Element {
	if line.Italic {
		node = node.CreateElement("em")
	}
	if line.Bold {
		node = node.CreateElement("strong")
	}
	if classes := decorationClasses(line); len(classes) > 0 {
		span := node.CreateElement("span")
		span.CreateAttr("class", strings.Join(classes, " "))
		node = span
	}
	if line.Super {
		node = node.CreateElement("sup")
	}
	if line.Sub {
		node = node.CreateElement("sub")
	}
	return node
}

func decorationClasses(line *ldoc.Line) []string {
	var classes []string
	if line.Underline {
		classes = append(classes, "underline")
	}
	if line.Strikeout {
		classes = append(classes, "strikeout")
	}
	if line.Mono {
		classes = append(classes, "monospace")
	}
	return classes
}
