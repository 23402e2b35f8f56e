package users

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/recordkeeper/internal/common"
	"github.com/dmitrijs2005/recordkeeper/internal/logging"
	"github.com/dmitrijs2005/recordkeeper/internal/models"
	"github.com/dmitrijs2005/recordkeeper/internal/repositories/recordfile"
)

// DefaultFileName is the users file name inside the data directory.
const DefaultFileName = "users.txt"

// FileRepository keeps one credential in a plaintext file.
type FileRepository struct {
	path string
	log  logging.Logger
}

// NewFileRepository returns a repository backed by the file at path.
func NewFileRepository(path string, log logging.Logger) *FileRepository {
	return &FileRepository{path: path, log: log.With("store", "users")}
}

func (r *FileRepository) Path() string { return r.path }

// Load reads the stored credential. ok is false when the file holds no record.
func (r *FileRepository) Load(ctx context.Context) (models.Credential, bool, error) {
	return recordfile.Read(ctx, r.log, r.path, decode)
}

// Save validates c and replaces the file contents with it.
func (r *FileRepository) Save(ctx context.Context, c models.Credential) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return recordfile.Rewrite(ctx, r.log, r.path, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s %s %s\n", c.Name, c.Login, c.PasswordDigest)
		return err
	})
}

func decode(rd io.Reader) (models.Credential, bool, error) {
	br := bufio.NewReader(rd)

	var tokens []string
	for len(tokens) <= 3 {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return models.Credential{}, false, fmt.Errorf("read: %w: %w", common.ErrOpenFile, err)
		}
		tokens = append(tokens, strings.Fields(line)...)
		if err != nil {
			break
		}
	}

	switch len(tokens) {
	case 0:
		return models.Credential{}, false, nil
	case 3:
		return models.Credential{Name: tokens[0], Login: tokens[1], PasswordDigest: tokens[2]}, true, nil
	default:
		return models.Credential{}, false, fmt.Errorf("%w: expected 3 tokens, got %s", common.ErrMalformedRecord, tokenCount(len(tokens)))
	}
}

func tokenCount(n int) string {
	if n > 3 {
		return "more"
	}
	return fmt.Sprint(n)
}

// Compile-time assertion that FileRepository implements Repository.
var _ Repository = (*FileRepository)(nil)
