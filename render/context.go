package render

import (
	"github.com/beevik/etree"
	"go.uber.org/zap"

	"ldc/config"
	"ldc/ldoc"
)

// pass is the mutable render context of a single rendering pass. It is
// created fresh for every document and never shared, so concurrent renders of
// different documents are independent.
type pass struct {
	body *etree.Element
	log  *zap.Logger

	images *config.ImagesConfig

	// noteIndex is assigned to the next footnote, strictly increasing and
	// never reused even when a note is later dropped by cleanup.
	noteIndex int

	// link is the currently open anchor. Valid only until the reset flag, a
	// section, a paragraph or a destination switch clears it.
	link *etree.Element

	// hint is the pending tooltip text consumed by the next link or image.
	hint string

	// blob is the pending binary payload consumed by the next image line
	// without inline content.
	blob *blob

	// section receives top level content.
	section *etree.Element

	dest ldoc.Destination
}

func newPass(body *etree.Element, images *config.ImagesConfig, log *zap.Logger) *pass {
	return &pass{
		body:      body,
		log:       log,
		images:    images,
		noteIndex: 1,
		dest:      ldoc.DestinationBody,
	}
}
