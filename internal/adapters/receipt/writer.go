// Package receipt writes install receipts into install prefixes.
package receipt

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/formula/internal/core/domain"
	"go.trai.ch/zerr"
)

// Filename is the receipt file name inside the prefix.
const Filename = "INSTALL_RECEIPT.json"

// Writer implements ports.ReceiptWriter using a JSON file.
// Receipts are informational and are never read back to skip an install.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Path returns the receipt location for prefix.
func Path(prefix string) string {
	return filepath.Join(prefix, Filename)
}

// Write stores receipt in prefix, replacing any previous receipt.
func (w *Writer) Write(prefix string, receipt domain.Receipt) error {
	path := Path(prefix)

	data, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrReceiptWriteFailed, err), "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(errors.Join(domain.ErrReceiptWriteFailed, err), "path", path)
	}

	// Write to a temporary file first so a crash never leaves a truncated receipt.
	tmp := path + ".tmp"
	//nolint:gosec // prefix is provided by trusted caller
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return zerr.With(errors.Join(domain.ErrReceiptWriteFailed, err), "path", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return zerr.With(errors.Join(domain.ErrReceiptWriteFailed, err), "path", path)
	}
	return nil
}
