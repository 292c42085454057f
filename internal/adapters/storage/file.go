package storage

import (
	"fmt"
	"os"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/domain"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/ports"
)

// FileWriter persists records to the local filesystem. Writes overwrite any
// existing file at the record's path, which keeps retries of one press
// idempotent.
type FileWriter struct{}

func NewFileWriter() FileWriter { return FileWriter{} }

func (FileWriter) Write(rec *domain.Record) error {
	if err := os.WriteFile(rec.LocalPath, []byte(rec.Content), 0o644); err != nil {
		return fmt.Errorf("write record %s: %w", rec.LocalPath, err)
	}
	return nil
}

var _ ports.RecordWriter = FileWriter{}
