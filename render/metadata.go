package render

import (
	"strings"

	"github.com/beevik/etree"

	"ldc/ldoc"
)

// metaTerms maps document metadata names to social preview properties. Merge
// terms join all values into one tag, the rest emit one tag per value.
var metaTerms = []struct {
	term     string
	property string
	merge    bool
}{
	{"title", "og:title", true},
	{"description", "og:description", true},
	{"creator", "article:author", false},
	{"subject", "article:tag", false},
	{"date", "article:published_time", false},
}

// applyMetadata maps document level descriptive metadata onto head tags.
// Emits nothing when the document does not request description.
func applyMetadata(head *etree.Element, doc *ldoc.Document) {
	if !doc.Describe {
		return
	}

	if titles := doc.Terms("title"); len(titles) > 0 {
		title := head.CreateElement("title")
		title.SetText(strings.Join(titles, ", "))
	}

	if ids := doc.Terms("identifier"); len(ids) > 0 {
		meta := head.CreateElement("meta")
		meta.CreateAttr("name", "identifier")
		meta.CreateAttr("content", ids[0])
	}

	createProperty(head, "og:type", "article")

	for _, t := range metaTerms {
		values := doc.Terms(t.term)
		if len(values) == 0 {
			continue
		}
		if t.merge {
			createProperty(head, t.property, strings.Join(values, ", "))
			continue
		}
		for _, v := range values {
			createProperty(head, t.property, v)
		}
	}
}

func createProperty(head *etree.Element, property, content string) {
	meta := head.CreateElement("meta")
	meta.CreateAttr("property", property)
	meta.CreateAttr("content", content)
}
