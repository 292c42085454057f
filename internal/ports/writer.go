package ports

import "github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/domain"

// RecordWriter persists a record's content at its local path, overwriting any
// existing file so retries of the same press are idempotent.
type RecordWriter interface {
	Write(rec *domain.Record) error
}
