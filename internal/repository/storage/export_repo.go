package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ExportStore defines the interface for report export storage operations
type ExportStore interface {
	// Upload stores data under objectPath and returns a location the caller can hand to a user
	Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error)
	Delete(ctx context.Context, objectPath string) error
}

// GenerateObjectPath creates a unique object path for a report export
func GenerateObjectPath(report, month, ext string) string {
	return path.Join("reports", report, month, uuid.New().String()+ext)
}

// LocalExportStore implements ExportStore on the local filesystem
type LocalExportStore struct {
	baseDir    string
	createFile func(name string) (io.WriteCloser, error)
}

func createFile(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// NewLocalExportStore creates a store rooted at baseDir, creating it if needed
func NewLocalExportStore(baseDir string) (*LocalExportStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve export directory: %w", err)
	}
	return &LocalExportStore{baseDir: abs, createFile: createFile}, nil
}

// Upload writes data to a file under the base directory and returns its absolute path
func (s *LocalExportStore) Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target, err := s.resolve(objectPath)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := s.createFile(target)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	if _, err := io.Copy(f, data); err != nil {
		f.Close()
		os.Remove(target)
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to close export file: %w", err)
	}
	return target, nil
}

// Delete removes an exported file, ignoring files that are already gone
func (s *LocalExportStore) Delete(ctx context.Context, objectPath string) error {
	target, err := s.resolve(objectPath)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete export file: %w", err)
	}
	return nil
}

// resolve maps an object path into the base directory, refusing paths that escape it
func (s *LocalExportStore) resolve(objectPath string) (string, error) {
	target := filepath.Join(s.baseDir, filepath.FromSlash(objectPath))
	rel, err := filepath.Rel(s.baseDir, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object path %q", objectPath)
	}
	return target, nil
}
