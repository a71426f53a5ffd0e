package ldoc

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NormalizeIdentifier makes sure the document carries exactly one valid UUID
// under the identifier term and returns it. An absent or invalid identifier
// is replaced with a freshly generated one.
func (d *Document) NormalizeIdentifier(log *zap.Logger) (string, error) {
	ids := d.Terms("identifier")
	if len(ids) > 0 {
		if _, err := uuid.Parse(ids[0]); err == nil {
			return ids[0], nil
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	if len(ids) > 0 {
		log.Warn("Document has invalid identifier, correcting", zap.String("old_id", ids[0]), zap.Stringer("new_id", id))
	}
	d.SetTerm("identifier", id.String())
	return id.String(), nil
}
