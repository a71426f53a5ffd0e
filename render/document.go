package render

import (
	_ "embed"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"ldc/ldoc"
)

// Class names below are part of the output contract - stylesheets shipped
// with rendered documents rely on them.

//go:embed default.css
var defaultStylesheet []byte

var alignClasses = map[ldoc.Align]string{
	ldoc.AlignLeft:   "align-left",
	ldoc.AlignCenter: "align-center",
	ldoc.AlignRight:  "align-right",
}

// newShell creates the output tree and returns it together with the body
// element content is rendered into. In body-only mode the body element is the
// document root and no head is produced.
func newShell(doc *ldoc.Document, opts *Options, log *zap.Logger) (*etree.Document, *etree.Element) {
	tree := etree.NewDocument()

	if opts.BodyOnly {
		body := tree.CreateElement("body")
		addBodyClasses(body, opts)
		return tree, body
	}

	html := tree.CreateElement("html")
	if len(opts.Lang) > 0 {
		if tag, err := language.Parse(opts.Lang); err == nil {
			html.CreateAttr("lang", tag.String())
		} else {
			log.Warn("Ignoring invalid document language", zap.String("lang", opts.Lang), zap.Error(err))
		}
	}

	head := html.CreateElement("head")
	meta := head.CreateElement("meta")
	meta.CreateAttr("charset", "utf-8")

	style := head.CreateElement("style")
	css := string(defaultStylesheet)
	if len(opts.ExtraCSS) > 0 {
		css += string(opts.ExtraCSS)
	}
	style.SetText(css)

	for _, href := range opts.Stylesheets {
		link := head.CreateElement("link")
		link.CreateAttr("rel", "stylesheet")
		link.CreateAttr("href", href)
	}

	applyMetadata(head, doc)

	body := html.CreateElement("body")
	addBodyClasses(body, opts)
	return tree, body
}

func addBodyClasses(body *etree.Element, opts *Options) {
	if len(opts.BodyClasses) > 0 {
		body.CreateAttr("class", strings.Join(opts.BodyClasses, " "))
	}
}

// addClass appends a class to the element, keeping classes already present.
func addClass(el *etree.Element, name string) {
	if existing := el.SelectAttrValue("class", ""); len(existing) > 0 {
		el.RemoveAttr("class")
		el.CreateAttr("class", existing+" "+name)
		return
	}
	el.CreateAttr("class", name)
}

// lastChildElement returns the last direct child with one of the given tags.
func lastChildElement(parent *etree.Element, tags ...string) *etree.Element {
	var last *etree.Element
	for _, child := range parent.ChildElements() {
		for _, tag := range tags {
			if child.Tag == tag {
				last = child
				break
			}
		}
	}
	return last
}

// lastDescendant returns the last element with one of the given tags in
// document order, searching the whole subtree under parent.
func lastDescendant(parent *etree.Element, tags ...string) *etree.Element {
	var last *etree.Element
	for _, child := range parent.ChildElements() {
		for _, tag := range tags {
			if child.Tag == tag {
				last = child
				break
			}
		}
		if d := lastDescendant(child, tags...); d != nil {
			last = d
		}
	}
	return last
}

// isDescendantOrSelf reports whether el is node or sits anywhere below it.
func isDescendantOrSelf(el, node *etree.Element) bool {
	for ; el != nil; el = el.Parent() {
		if el == node {
			return true
		}
	}
	return false
}
