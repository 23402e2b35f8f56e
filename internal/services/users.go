// Package services puts the user-facing reporting on top of the record
// repositories. Every operation prints one status line to the configured
// writer and then returns its error, if any, so the caller may carry on.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dmitrijs2005/recordkeeper/internal/common"
	"github.com/dmitrijs2005/recordkeeper/internal/logging"
	"github.com/dmitrijs2005/recordkeeper/internal/models"
	"github.com/dmitrijs2005/recordkeeper/internal/repositories/users"
)

// UserService loads and saves the single credential.
type UserService interface {
	Load(ctx context.Context) (models.Credential, bool, error)
	Save(ctx context.Context, c models.Credential) error
	Path() string
}

type userService struct {
	repo users.Repository
	out  io.Writer
	log  logging.Logger
}

func NewUserService(repo users.Repository, out io.Writer, log logging.Logger) UserService {
	return &userService{repo: repo, out: out, log: log}
}

func (s *userService) Path() string { return s.repo.Path() }

func (s *userService) Load(ctx context.Context) (models.Credential, bool, error) {
	name := filepath.Base(s.repo.Path())

	c, ok, err := s.repo.Load(ctx)
	switch {
	case err != nil:
		reportLoadError(ctx, s.out, s.log, name, err)
	case ok:
		fmt.Fprintf(s.out, "Loaded user: %s\n", c)
	default:
		fmt.Fprintf(s.out, "%s is empty\n", name)
	}
	return c, ok, err
}

func (s *userService) Save(ctx context.Context, c models.Credential) error {
	name := filepath.Base(s.repo.Path())

	if err := s.repo.Save(ctx, c); err != nil {
		reportSaveError(ctx, s.out, s.log, name, "user", err)
		return err
	}
	fmt.Fprintf(s.out, "Saved user: %s\n", c)
	return nil
}

func reportLoadError(ctx context.Context, out io.Writer, log logging.Logger, name string, err error) {
	if errors.Is(err, common.ErrMalformedRecord) {
		fmt.Fprintf(out, "Could not parse %s\n", name)
	} else {
		fmt.Fprintf(out, "Could not open %s\n", name)
	}
	log.Error(ctx, "load failed", "file", name, "err", err)
}

func reportSaveError(ctx context.Context, out io.Writer, log logging.Logger, name, kind string, err error) {
	if errors.Is(err, common.ErrInvalidRecord) {
		fmt.Fprintf(out, "Invalid %s record: %v\n", kind, err)
	} else {
		fmt.Fprintf(out, "Could not open %s for writing\n", name)
	}
	log.Error(ctx, "save failed", "file", name, "err", err)
}
