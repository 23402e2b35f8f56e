package messages

import (
	"context"

	"github.com/dmitrijs2005/recordkeeper/internal/models"
)

// Repository stores at most one message.
type Repository interface {
	// Load returns the stored message. ok is false when the store holds no
	// record; a present but unparsable record is an error.
	Load(ctx context.Context) (m models.Message, ok bool, err error)

	// Save replaces whatever is stored with m.
	Save(ctx context.Context, m models.Message) error

	// Path is the backing file.
	Path() string
}
