// Package storage persists a budget document as a single JSON file
// and remembers the last opened file across runs.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pocketplan/backend/internal/models"
)

// Error classes for the persistence gateway.
var (
	// ErrPersistence is the class for all read/write/parse failures.
	ErrPersistence = errors.New("persistence failed")

	// ErrParse is returned when the file exists but is not a valid
	// document.
	ErrParse = fmt.Errorf("%w: the budget file does not contain valid JSON", ErrPersistence)

	// ErrNoFile is returned when no target file has been selected yet.
	ErrNoFile = fmt.Errorf("%w: no budget file selected", ErrPersistence)
)

// Gateway reads and writes the budget document on its target file.
//
// A write failure never affects in-memory state; the last error is
// kept so callers can surface it without blocking the mutation that
// triggered the write.
type Gateway struct {
	path    string
	lastErr error
}

// NewGateway returns a gateway for the passed file path. An empty path
// means no file has been selected yet.
func NewGateway(path string) *Gateway {
	return &Gateway{path: path}
}

// File returns the current target file, empty when none is selected.
func (g *Gateway) File() string {
	return g.path
}

// SetFile changes the target file. It does not read or write anything.
func (g *Gateway) SetFile(path string) {
	g.path = path
	g.lastErr = nil
}

// LastError returns the error of the most recent write attempt, nil
// when it succeeded.
func (g *Gateway) LastError() error {
	return g.lastErr
}

// Read loads the document from the target file.
//
// A missing file yields an empty default document, not an error. The
// loaded document is migrated before it is returned, so legacy
// name-keyed data never reaches the caller.
func (g *Gateway) Read() (*models.Document, error) {
	if g.path == "" {
		return nil, ErrNoFile
	}

	data, err := os.ReadFile(g.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.DefaultDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPersistence, err)
	}

	doc := models.DefaultDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}

	models.Migrate(doc, time.Now())
	return doc, nil
}

// Write saves the document to the target file.
//
// The document is written to a temporary file first and renamed into
// place, so a failed write never truncates the previous state.
func (g *Gateway) Write(doc *models.Document) error {
	g.lastErr = g.write(doc)
	return g.lastErr
}

func (g *Gateway) write(doc *models.Document) error {
	if g.path == "" {
		return ErrNoFile
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPersistence, err)
	}

	dir := filepath.Dir(g.path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("%w: %s", ErrPersistence, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(g.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPersistence, err)
	}

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: %s", ErrPersistence, err)
	}

	if err := os.Rename(tmp.Name(), g.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("%w: %s", ErrPersistence, err)
	}

	return nil
}
