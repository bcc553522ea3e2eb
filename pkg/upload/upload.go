// Package upload validates and stores applicant documents. Files land in a
// flat directory keyed by a randomized filename and are served back
// statically under /uploads.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const DefaultMaxSize = 10 << 20 // 10MB

// ErrInvalidType is returned for files outside the document whitelist.
var ErrInvalidType = errors.New("invalid file type. Only PDF, DOC, and DOCX files are allowed")

// Allowed document extensions (strict whitelist).
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Magic byte prefixes per extension. Content must match the claimed
// extension so a renamed binary cannot slip through.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                 // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}},        // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                // ZIP (PK..)
}

// Store writes validated documents to a local directory.
type Store struct {
	dir     string
	maxSize int64
}

func NewStore(dir string, maxSize int64) (*Store, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: create dir: %w", err)
	}
	return &Store{dir: dir, maxSize: maxSize}, nil
}

// Dir returns the directory files are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save validates and persists one multipart file, returning the generated
// filename under the store directory. field names the form field, used only
// to prefix the stored filename like "resume-<uuid>.pdf".
func (s *Store) Save(field string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxSize {
		return "", fmt.Errorf("file too large: max %d bytes", s.maxSize)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if err := ValidateExtension(fh.Filename); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.maxSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(data)) > s.maxSize {
		return "", fmt.Errorf("file too large: max %d bytes", s.maxSize)
	}

	if !matchesMagicBytes(ext, data) {
		return "", errors.New("file content does not match its extension")
	}

	name := fmt.Sprintf("%s-%s%s", field, uuid.NewString(), ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("upload: write file: %w", err)
	}
	return name, nil
}

// Remove deletes a previously stored file. Missing files are not an error;
// this is used to clean up after a failed application submit.
func (s *Store) Remove(name string) {
	if name == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}

// ValidateExtension checks only the filename extension against the
// document whitelist.
func ValidateExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || !allowedExtensions[ext] {
		return ErrInvalidType
	}
	return nil
}

func matchesMagicBytes(ext string, data []byte) bool {
	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}
	for _, sig := range signatures {
		if len(data) >= len(sig) && bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
