// Package printer spools finished editions to a system print queue
// through lpr.
package printer

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Spool sends a PDF to the given printer. An empty printer name uses
// the system default queue.
func Spool(ctx context.Context, pdfPath, printerName string) error {
	if _, err := os.Stat(pdfPath); err != nil {
		return errors.Wrap(err, "pdf not found")
	}

	cmd := exec.CommandContext(ctx, "lpr", spoolArgs(pdfPath, printerName)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "lpr: %s", strings.TrimSpace(string(out)))
	}
	return nil
}

// spoolArgs builds the lpr argument list.
func spoolArgs(pdfPath, printerName string) []string {
	if printerName != "" {
		return []string{"-P", printerName, pdfPath}
	}
	return []string{pdfPath}
}
