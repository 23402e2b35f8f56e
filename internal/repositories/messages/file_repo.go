package messages

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

// DefaultFileName is the messages file name inside the data directory.
const DefaultFileName = "messages.txt"

// FileRepository keeps one message in a plaintext file.
type FileRepository struct {
	path string
	log  logging.Logger
}

// NewFileRepository returns a repository backed by the file at path.
func NewFileRepository(path string, log logging.Logger) *FileRepository {
	return &FileRepository{path: path, log: log.With("store", "messages")}
}

func (r *FileRepository) Path() string { return r.path }

// Load reads the stored message. ok is false when the file holds no record.
func (r *FileRepository) Load(ctx context.Context) (models.Message, bool, error) {
	return recordfile.Read(ctx, r.log, r.path, decode)
}

// Save validates m and replaces the file contents with it.
func (r *FileRepository) Save(ctx context.Context, m models.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	return recordfile.Rewrite(ctx, r.log, r.path, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s\n%s %s\n", m.Text, m.Sender, m.Receiver)
		return err
	})
}

func decode(rd io.Reader) (models.Message, bool, error) {
	br := bufio.NewReader(rd)

	text, ok, err := nextLine(br, func(l string) bool { return l != "" })
	if err != nil || !ok {
		return models.Message{}, false, err
	}

	tail, ok, err := nextLine(br, func(l string) bool { return strings.TrimSpace(l) != "" })
	if err != nil {
		return models.Message{}, false, err
	}
	if !ok {
		return models.Message{}, false, fmt.Errorf("%w: missing sender and receiver", common.ErrMalformedRecord)
	}

	fields := strings.Fields(tail)
	if len(fields) < 2 {
		return models.Message{}, false, fmt.Errorf("%w: expected sender and receiver, got %q", common.ErrMalformedRecord, tail)
	}

	return models.Message{Text: text, Sender: fields[0], Receiver: fields[1]}, true, nil
}

// nextLine returns the first line accepted by keep, without its terminator.
// ok is false when input ends first.
func nextLine(br *bufio.Reader, keep func(string) bool) (string, bool, error) {
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("read: %w: %w", common.ErrOpenFile, err)
		}
		eof := err != nil

		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if keep(line) {
				return line, true, nil
			}
		}
		if eof {
			return "", false, nil
		}
	}
}

// Compile-time assertion that FileRepository implements Repository.
var _ Repository = (*FileRepository)(nil)
