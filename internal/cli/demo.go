package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recordkeeper/internal/cryptox"
	"github.com/dmitrijs2005/recordkeeper/internal/models"
)

// Demonstration records.
const (
	demoName     = "Ivan"
	demoLogin    = "ivan123"
	demoPassword = "password123"
	demoText     = "Hello, how are you?"
	demoSender   = "Ivan"
	demoReceiver = "Maria"
)

// RunDemo reads whatever is stored, writes the demonstration credential and
// message, reads them back, and prints the permission summary followed by the
// fixed security summary. Store failures are reported and skipped.
func (a *App) RunDemo(ctx context.Context) {
	a.heading("Reading existing data")
	a.Show(ctx)

	fmt.Fprintln(a.out)
	a.heading("Writing new data")

	c, err := models.NewCredential(demoName, demoLogin, demoPassword, a.hasher)
	if err != nil {
		a.log.Error(ctx, "could not build demo credential", "err", err)
	} else {
		_ = a.userService.Save(ctx, c)
	}
	_ = a.messageService.Save(ctx, models.Message{Text: demoText, Sender: demoSender, Receiver: demoReceiver})

	fmt.Fprintln(a.out)
	a.heading("Re-read to verify")
	a.Show(ctx)

	fmt.Fprintln(a.out)
	a.ShowPermissions()

	fmt.Fprintln(a.out)
	a.printSummary()

	if _, weak := a.hasher.(cryptox.LegacyHasher); weak {
		a.log.Debug(ctx, "legacy digest in use; choose --hasher argon2id for salted digests")
	}
}
