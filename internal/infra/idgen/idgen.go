// Package idgen generates placeholder ids for tasks created offline.
package idgen

import (
	"github.com/google/uuid"

	"github.com/runoshun/todomaster/internal/domain"
)

// Ensure UUID implements domain.IDGenerator.
var _ domain.IDGenerator = UUID{}

// UUID produces time-ordered UUIDv7 ids, so placeholders sort by creation
// and two tasks added in the same millisecond still differ.
type UUID struct{}

// NewID returns a fresh id.
func (UUID) NewID() domain.TaskID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return domain.TaskID(id.String())
}
