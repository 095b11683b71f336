// Package journeystore persists planned journeys as JSON artifacts.
package journeystore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Joshuacru/train-routes/internal/domain"
	"github.com/Joshuacru/train-routes/internal/ports"
)

const defaultJourneysDir = "journeys"

type JSONStore struct {
	rootDir    string
	dirName    string
	writeIndex bool
	now        func() time.Time
	newID      func() string
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: journeys/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDGenerator is useful for tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *JSONStore) { s.newID = gen }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.JourneysDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultJourneysDir
	}

	s := &JSONStore{
		rootDir:    root,
		dirName:    dir,
		writeIndex: false,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.JourneyStore = (*JSONStore)(nil)

func (s *JSONStore) SaveJourney(journey domain.JourneyArtifact) (string, error) {
	dir := filepath.Join(s.rootDir, s.dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "journeystore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := journey.PlannedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	toSave := journey
	toSave.PlannedAt = ts
	if toSave.ID == "" {
		toSave.ID = s.newID()
	}

	filename := fmt.Sprintf("%s_%s.json", ts.Format("20060102T150405Z"), toSave.ID)
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "journeystore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "journeystore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "journeystore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, filename, toSave)
	}

	return toSave.ID, nil
}

func (s *JSONStore) appendIndex(dir, filename string, journey domain.JourneyArtifact) error {
	type idx struct {
		ID          string    `json:"id"`
		File        string    `json:"file"`
		Origin      string    `json:"origin"`
		Destination string    `json:"destination"`
		Reachable   bool      `json:"reachable"`
		PlannedAt   time.Time `json:"planned_at"`
	}
	line, err := json.Marshal(idx{
		ID:          journey.ID,
		File:        filename,
		Origin:      journey.Result.Origin,
		Destination: journey.Result.Destination,
		Reachable:   journey.Result.Reachable,
		PlannedAt:   journey.PlannedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}
