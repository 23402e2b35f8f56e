package cli

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dmitrijs2005/recordkeeper/internal/config"
	"github.com/dmitrijs2005/recordkeeper/internal/cryptox"
	"github.com/dmitrijs2005/recordkeeper/internal/filex"
	"github.com/dmitrijs2005/recordkeeper/internal/logging"
	"github.com/dmitrijs2005/recordkeeper/internal/repositories/messages"
	"github.com/dmitrijs2005/recordkeeper/internal/repositories/users"
	"github.com/dmitrijs2005/recordkeeper/internal/services"
)

type App struct {
	userService    services.UserService
	messageService services.MessageService
	hasher         cryptox.Hasher
	log            logging.Logger
	in             io.Reader
	reader         *bufio.Reader
	out            io.Writer
}

// NewApp builds the dependency graph from c. Status lines go to out,
// diagnostics to errOut.
func NewApp(c *config.Config, in io.Reader, out, errOut io.Writer) (*App, error) {
	log, err := logging.New(errOut, c.LogLevel)
	if err != nil {
		return nil, err
	}

	hasher, err := cryptox.NewHasher(c.Hasher)
	if err != nil {
		return nil, err
	}

	dir, err := filex.EnsureDataDir(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	ur := users.NewFileRepository(filepath.Join(dir, c.UsersFile), log)
	mr := messages.NewFileRepository(filepath.Join(dir, c.MessagesFile), log)

	return &App{
		userService:    services.NewUserService(ur, out, log),
		messageService: services.NewMessageService(mr, out, log),
		hasher:         hasher,
		log:            log,
		in:             in,
		reader:         bufio.NewReader(in),
		out:            out,
	}, nil
}
