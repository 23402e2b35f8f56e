package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/recordkeeper/internal/models"
)

func messageCmd(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "message",
		Short: "Manage the stored message",
	}

	var m models.Message
	set := &cobra.Command{
		Use:   "set",
		Short: "Store a message, replacing the previous one",
		Long: `Store a message, replacing the previous one. When --text is omitted the
text is read as one line from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app().SetMessage(cmd.Context(), m)
		},
	}
	set.Flags().StringVar(&m.Text, "text", "", "message text (one line)")
	set.Flags().StringVar(&m.Sender, "from", "", "sender (single word)")
	set.Flags().StringVar(&m.Receiver, "to", "", "receiver (single word)")
	_ = set.MarkFlagRequired("from")
	_ = set.MarkFlagRequired("to")

	cmd.AddCommand(set)
	return cmd
}

// SetMessage saves m, prompting for the text when it is empty.
func (a *App) SetMessage(ctx context.Context, m models.Message) error {
	if m.Text == "" {
		text, err := GetSimpleText(a.reader, "Message text", a.out)
		if err != nil {
			return err
		}
		m.Text = text
	}
	return a.messageService.Save(ctx, m)
}
