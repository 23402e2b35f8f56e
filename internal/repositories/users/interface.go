package users

import (
	"context"

	"github.com/dmitrijs2005/recordkeeper/internal/models"
)

// Repository stores at most one credential.
type Repository interface {
	// Load returns the stored credential. ok is false when the store holds no
	// record; a present but unparsable record is an error.
	Load(ctx context.Context) (c models.Credential, ok bool, err error)

	// Save replaces whatever is stored with c.
	Save(ctx context.Context, c models.Credential) error

	// Path is the backing file.
	Path() string
}
