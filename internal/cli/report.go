package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/recordkeeper/internal/filex"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	warnColor    = color.New(color.FgYellow)
)

var summaryLines = []string{
	"1. Files protected with permissions 600 (owner read/write only)",
	"2. Passwords stored as hashes (not plain text)",
	"3. Other users cannot access these files",
}

func (a *App) heading(title string) {
	headingColor.Fprintf(a.out, "=== %s ===\n", title)
}

// Show loads both records and reports them.
func (a *App) Show(ctx context.Context) {
	_, _, _ = a.userService.Load(ctx)
	_, _, _ = a.messageService.Load(ctx)
}

// ShowPermissions prints the permission summary of both record files.
func (a *App) ShowPermissions() {
	a.heading("File Permissions")
	for _, path := range []string{a.userService.Path(), a.messageService.Path()} {
		name := filepath.Base(path)
		switch s := filex.PermissionSummary(path); s {
		case filex.SummaryUnknown:
			warnColor.Fprintf(a.out, "%s: Could not check permissions\n", name)
		default:
			fmt.Fprintf(a.out, "%s: %s\n", name, s)
		}
	}
}

func (a *App) printSummary() {
	a.heading("Summary")
	for _, l := range summaryLines {
		fmt.Fprintln(a.out, l)
	}
}
