package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotFound is returned by Open and Stat when no regular file exists at the archive path.
var ErrNotFound = errors.New("archive not found")

// Archive is a read-only handle to a zip file on disk.
// It keeps the central directory listing in memory and reads
// entry payloads on demand, one at a time.
type Archive struct {
	path  string
	rc    *zip.ReadCloser
	names []string
	files map[string]*zip.File // last entry wins for repeated names
}

// Stat checks that path names a regular file.
// It returns an error wrapping ErrNotFound when it does not.
func Stat(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("failed to stat archive %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrNotFound, path)
	}
	return nil
}

// Open opens the zip archive at path and reads its entry listing.
// The caller must Close the returned Archive.
func Open(path string) (*Archive, error) {
	if err := Stat(path); err != nil {
		return nil, err
	}

	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip %q: %w", path, err)
	}

	a := &Archive{
		path:  path,
		rc:    rc,
		names: make([]string, 0, len(rc.File)),
		files: make(map[string]*zip.File, len(rc.File)),
	}
	for _, f := range rc.File {
		a.names = append(a.names, f.Name)
		a.files[f.Name] = f
	}

	return a, nil
}

// Path returns the file system path the archive was opened from.
func (a *Archive) Path() string {
	return a.path
}

// Names returns every entry name in central directory order.
// Repeated names appear as many times as they occur in the archive.
func (a *Archive) Names() []string {
	return a.names
}

// ReadFile returns the uncompressed contents of the named entry.
func (a *Archive) ReadFile(name string) ([]byte, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, fmt.Errorf("entry %q not found in %s", name, a.path)
	}

	r, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open entry %q: %w", name, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %q: %w", name, err)
	}

	return data, nil
}

// Close releases the underlying file handle.
func (a *Archive) Close() error {
	return a.rc.Close()
}
