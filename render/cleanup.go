package render

import (
	"strings"

	"github.com/beevik/etree"
)

// cleanup removes every section and paragraph that ends up with no content.
// Children are visited before their parents, so a section whose only
// paragraph is dropped is itself dropped in the same pass. Running the pass
// again is a no-op.
func cleanup(body *etree.Element) {
	for _, child := range body.ChildElements() {
		cleanupElement(child)
	}
	dropOrphanDividers(body)
}

// dropOrphanDividers removes dividers stranded by pruned sections. A divider
// stays only when the element right before it is a section, so the output
// never starts with a divider and never shows two in a row.
func dropOrphanDividers(body *etree.Element) {
	var prev string
	for _, child := range body.ChildElements() {
		if child.Tag == "hr" && prev != "section" {
			body.RemoveChild(child)
			continue
		}
		prev = child.Tag
	}
}

func cleanupElement(el *etree.Element) {
	for _, child := range el.ChildElements() {
		cleanupElement(child)
	}
	if el.Tag != "section" && el.Tag != "p" {
		return
	}
	if isEmpty(el) {
		el.Parent().RemoveChild(el)
	}
}

func isEmpty(el *etree.Element) bool {
	if len(el.ChildElements()) > 0 {
		return false
	}
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok && len(strings.TrimSpace(cd.Data)) > 0 {
			return false
		}
	}
	return true
}
