package api

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mvail/pixpress/domain/editor"
)

// StoredImage is a decoded image together with what the store knows about
// its encoded form.
type StoredImage struct {
	Image     image.Image
	Format    editor.Format
	SizeBytes int64
}

// originalPrefix marks the untouched twin kept next to every working copy.
const originalPrefix = "original_"

// Store owns the upload directory. Every upload gets a random working name
// plus an untouched twin under originalPrefix, so adjustments can always be
// recomputed from the pristine pixels.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the upload directory.
func (s *Store) Dir() string { return s.dir }

// Resolve maps a client-supplied filename to a path inside the upload
// directory, rejecting anything that would escape it.
func (s *Store) Resolve(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("empty filename")
	}
	if strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	if filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	absDir, err := filepath.Abs(s.dir)
	if err != nil {
		return "", fmt.Errorf("resolve upload dir: %w", err)
	}
	full := filepath.Clean(filepath.Join(absDir, filename))
	if !strings.HasPrefix(full, absDir+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}
	return full, nil
}

// NewName generates a fresh working filename preserving the upload's
// extension.
func (s *Store) NewName(uploadName string) string {
	ext := strings.ToLower(filepath.Ext(uploadName))
	if ext == ".jpeg" {
		ext = ".jpg"
	}
	return uuid.NewString() + ext
}

// SaveUpload writes the uploaded bytes under a fresh name and an untouched
// original_ twin, returning the working filename.
func (s *Store) SaveUpload(uploadName string, r io.Reader) (string, error) {
	name := s.NewName(uploadName)
	path, err := s.Resolve(name)
	if err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("save upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	if err := s.copyFile(name, originalPrefix+name); err != nil {
		return "", err
	}
	return name, nil
}

// OriginalName returns the pristine twin's filename for a working filename.
func OriginalName(filename string) string {
	if strings.HasPrefix(filename, originalPrefix) {
		return filename
	}
	return originalPrefix + filename
}

// Remove deletes the working copy and its pristine twin. Missing files are
// not an error.
func (s *Store) Remove(filename string) error {
	for _, name := range []string{filename, OriginalName(filename)} {
		path, err := s.Resolve(name)
		if err != nil {
			return err
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}

// Rename moves a stored file to a new name inside the upload directory.
func (s *Store) Rename(oldName, newName string) error {
	oldPath, err := s.Resolve(oldName)
	if err != nil {
		return err
	}
	newPath, err := s.Resolve(newName)
	if err != nil {
		return err
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("rename %s: %w", oldName, err)
	}
	return nil
}

// Exists reports whether a stored file is present.
func (s *Store) Exists(filename string) bool {
	path, err := s.Resolve(filename)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Size returns the size in bytes of a stored file.
func (s *Store) Size(filename string) (int64, error) {
	path, err := s.Resolve(filename)
	if err != nil {
		return 0, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", filename, err)
	}
	return fi.Size(), nil
}

// Open decodes a stored image.
func (s *Store) Open(filename string) (*StoredImage, error) {
	path, err := s.Resolve(filename)
	if err != nil {
		return nil, err
	}
	img, format, err := editor.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", filename, err)
	}
	return &StoredImage{Image: img, Format: format, SizeBytes: fi.Size()}, nil
}

// Save encodes an image over a stored filename.
func (s *Store) Save(filename string, img *StoredImage, quality int) error {
	path, err := s.Resolve(filename)
	if err != nil {
		return err
	}
	format := img.Format
	if !format.CanEncode() {
		format = editor.FormatPNG
	}
	return editor.Save(path, img.Image, format, quality)
}

// WriteBytes stores raw encoded bytes under filename.
func (s *Store) WriteBytes(filename string, data []byte) error {
	path, err := s.Resolve(filename)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

func (s *Store) copyFile(src, dst string) error {
	srcPath, err := s.Resolve(src)
	if err != nil {
		return err
	}
	dstPath, err := s.Resolve(dst)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
