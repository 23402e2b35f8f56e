package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/recordkeeper/internal/models"
	"github.com/dmitrijs2005/recordkeeper/internal/shared"
)

var errEmptyPassword = errors.New("password must not be empty")

func userCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the stored credential",
	}

	var name, login string
	set := &cobra.Command{
		Use:   "set",
		Short: "Store a credential, replacing the previous one",
		Long: `Store a credential, replacing the previous one. The password is read from
the terminal without echo (or as one line from stdin when it is not a
terminal) and only its digest is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().SetUser(cmd.Context(), name, login)
		},
	}
	set.Flags().StringVar(&name, "name", "", "display name (single word)")
	set.Flags().StringVar(&login, "login", "", "login (single word)")
	_ = set.MarkFlagRequired("name")
	_ = set.MarkFlagRequired("login")

	cmd.AddCommand(set)
	return cmd
}

// SetUser prompts for a password, derives its digest and saves the credential.
func (a *App) SetUser(ctx context.Context, name, login string) error {
	pw, err := GetPassword(a.in, a.reader, a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(pw)

	if len(pw) == 0 {
		return errEmptyPassword
	}

	c, err := models.NewCredential(name, login, string(pw), a.hasher)
	if err != nil {
		return err
	}
	return a.userService.Save(ctx, c)
}
