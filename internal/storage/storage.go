package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"portfoliohub/internal/model"
)

var (
	// ErrTypeNotAllowed is returned before anything touches disk.
	ErrTypeNotAllowed = errors.New("file type not allowed")
)

// allowedExtensions maps each accepted extension (without dot, lowercase) to
// the file kind recorded in metadata.
var allowedExtensions = map[string]string{
	"png":  model.FileKindImage,
	"jpg":  model.FileKindImage,
	"jpeg": model.FileKindImage,
	"gif":  model.FileKindImage,
	"mp4":  model.FileKindVideo,
	"avi":  model.FileKindVideo,
	"mov":  model.FileKindVideo,
	"txt":  model.FileKindDocument,
	"pdf":  model.FileKindDocument,
	"doc":  model.FileKindDocument,
	"docx": model.FileKindDocument,
}

// Store writes uploaded blobs into a flat directory. Stored names are
// generated server-side so a hostile original filename can never influence
// the on-disk path.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("upload directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory failed: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Classify returns the file kind for an original filename, or
// ErrTypeNotAllowed when the extension is not in the allow-list.
func Classify(originalName string) (string, error) {
	ext := extension(originalName)
	if ext == "" {
		return "", ErrTypeNotAllowed
	}
	kind, ok := allowedExtensions[ext]
	if !ok {
		return "", ErrTypeNotAllowed
	}
	return kind, nil
}

// NewStoredName generates a fresh collision-resistant name carrying only the
// lowercased extension of the original filename.
func NewStoredName(originalName string) (string, error) {
	ext := extension(originalName)
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrTypeNotAllowed
	}
	return uuid.NewString() + "." + ext, nil
}

// Save writes the blob under storedName and reports the number of bytes
// actually written.
func (s *Store) Save(storedName string, r io.Reader) (int64, error) {
	path := filepath.Join(s.dir, storedName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create blob %s failed: %w", storedName, err)
	}

	written, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// Half-written blob is useless; best effort removal.
		os.Remove(path)
		return 0, fmt.Errorf("write blob %s failed: %w", storedName, err)
	}
	return written, nil
}

// Remove deletes a stored blob. A missing blob is not an error so cascade
// deletes stay idempotent.
func (s *Store) Remove(storedName string) error {
	path := filepath.Join(s.dir, storedName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob %s failed: %w", storedName, err)
	}
	return nil
}

func (s *Store) Path(storedName string) string {
	return filepath.Join(s.dir, storedName)
}

func extension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	return strings.TrimPrefix(ext, ".")
}
