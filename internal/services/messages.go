package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dmitrijs2005/recordkeeper/internal/logging"
	"github.com/dmitrijs2005/recordkeeper/internal/models"
	"github.com/dmitrijs2005/recordkeeper/internal/repositories/messages"
)

// MessageService loads and saves the single message.
type MessageService interface {
	Load(ctx context.Context) (models.Message, bool, error)
	Save(ctx context.Context, m models.Message) error
	Path() string
}

type messageService struct {
	repo messages.Repository
	out  io.Writer
	log  logging.Logger
}

func NewMessageService(repo messages.Repository, out io.Writer, log logging.Logger) MessageService {
	return &messageService{repo: repo, out: out, log: log}
}

func (s *messageService) Path() string { return s.repo.Path() }

func (s *messageService) Load(ctx context.Context) (models.Message, bool, error) {
	name := filepath.Base(s.repo.Path())

	m, ok, err := s.repo.Load(ctx)
	switch {
	case err != nil:
		reportLoadError(ctx, s.out, s.log, name, err)
	case ok:
		fmt.Fprintf(s.out, "Loaded message: %s\n", m)
	default:
		fmt.Fprintf(s.out, "%s is empty\n", name)
	}
	return m, ok, err
}

func (s *messageService) Save(ctx context.Context, m models.Message) error {
	name := filepath.Base(s.repo.Path())

	if err := s.repo.Save(ctx, m); err != nil {
		reportSaveError(ctx, s.out, s.log, name, "message", err)
		return err
	}
	fmt.Fprintf(s.out, "Saved message: %s\n", m)
	return nil
}
