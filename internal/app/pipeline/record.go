package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/app/config"
	"github.com/Sanjib-ac/gsk-LIAL-Initiation-Device/internal/domain"
)

// PrepareRecord builds the record for one press. The timestamp is frozen
// here, so every retry of the press targets the same file with the same
// content. Directory creation is part of setup: a failure is fatal for the
// run, not a retryable write failure.
func PrepareRecord(files config.FileConfig, connected bool, now time.Time) (*domain.Record, error) {
	if err := os.MkdirAll(files.SaveDirectory, 0o755); err != nil {
		return nil, fmt.Errorf("create save directory %s: %w", files.SaveDirectory, err)
	}

	status := "Disconnected"
	if connected {
		status = "Connected"
	}

	filename := fmt.Sprintf("%s_%s%s", files.Prefix, now.Format("20060102_150405"), files.Extension)
	content := fmt.Sprintf("ADS Data Log\nTimestamp: %s\nNetwork Status: %s\n\n--- TEST Data ---\nSample data\n",
		now.Format("2006-01-02 15:04:05"), status)

	return &domain.Record{
		Filename:  filename,
		Content:   content,
		LocalPath: filepath.Join(files.SaveDirectory, filename),
		CreatedAt: now,
		NetworkUp: connected,
	}, nil
}
