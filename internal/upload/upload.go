// Package upload stores candidate CV files on disk and validates them
// before anything touches the application record.
package upload

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxCVSize caps the accepted file size at 5 MiB.
const MaxCVSize = 5 << 20

// URLPrefix is the public path stored files are served under.
const URLPrefix = "/uploads"

var (
	// ErrFileTooLarge is returned for uploads over MaxCVSize.
	ErrFileTooLarge = errors.New("cv file exceeds the size limit")
	// ErrUnsupportedType is returned when neither the file extension nor the
	// declared content type matches a known CV format.
	ErrUnsupportedType = errors.New("unsupported cv file type")
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".rtf":  true,
	".odt":  true,
}

var allowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/rtf": true,
	"text/rtf":        true,
	"application/vnd.oasis.opendocument.text": true,
}

// Stored describes a persisted CV file.
type Stored struct {
	// Name is the generated on-disk filename.
	Name string
	// URL is the public retrieval path.
	URL string
	// OriginalName is the filename the candidate uploaded, kept for display.
	OriginalName string
}

// Store writes CV files into an uploads directory under a root that was
// probed for writability once at startup.
type Store struct {
	dir string
}

// ResolveRoot picks the storage root: the configured root if it is writable,
// otherwise the host temp directory. Writability is probed by creating and
// removing a throwaway subdirectory, once, at startup.
func ResolveRoot(preferred string) string {
	probe := filepath.Join(preferred, "uploads-test")
	if err := os.MkdirAll(probe, 0o755); err != nil {
		log.Printf("upload root %q not writable, falling back to temp dir: %v", preferred, err)
		return os.TempDir()
	}
	if err := os.Remove(probe); err != nil {
		log.Printf("failed to remove upload probe directory: %v", err)
	}
	return preferred
}

// New creates the uploads directory under root and returns the store.
func New(root string) (*Store, error) {
	dir := filepath.Join(root, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory stored files live in, for static serving.
func (s *Store) Dir() string {
	return s.dir
}

// Accept validates the upload and, when it passes, persists it under a
// collision-resistant name. A rejected file leaves no trace on disk.
func (s *Store) Accept(fh *multipart.FileHeader) (Stored, error) {
	if fh.Size > MaxCVSize {
		return Stored{}, ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	mime := fh.Header.Get("Content-Type")
	// Either signal is enough: a recognized extension or a recognized
	// declared content type.
	if !allowedExtensions[ext] && !allowedMimeTypes[mime] {
		return Stored{}, ErrUnsupportedType
	}

	name := storedName(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return Stored{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Println("failed to close uploaded file:", err)
		}
	}()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return Stored{}, fmt.Errorf("failed to create stored file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return Stored{}, fmt.Errorf("failed to write stored file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return Stored{}, fmt.Errorf("failed to close stored file: %w", err)
	}

	return Stored{
		Name:         name,
		URL:          URLPrefix + "/" + name,
		OriginalName: fh.Filename,
	}, nil
}

// storedName builds "<unix millis>-<random>-<sanitized original>".
func storedName(original string) string {
	return fmt.Sprintf("%d-%s-%s",
		time.Now().UnixMilli(),
		uuid.NewString(),
		sanitizeName(original),
	)
}

// sanitizeName maps every byte outside [A-Za-z0-9._-] to an underscore.
func sanitizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '.', c == '_', c == '-':
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
