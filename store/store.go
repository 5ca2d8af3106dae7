package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// appDir is the directory name under the user cache dir
const appDir = "flight-globe"

// Store persists msgpack objects as zstd-compressed files under one directory
type Store struct {
	dir string
}

// DefaultDir returns the per-user cache directory for saved state
func DefaultDir() (string, error) {
	cd, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cd, appDir), nil
}

// New returns a store rooted at dir, created lazily on first Save
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the store root
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path an object named name is stored at
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".msgpack.zst")
}

// Save encodes obj under name
// The file is written to a temporary sibling and renamed so readers never see a partial object
func (s *Store) Save(name string, obj any) error {
	path := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := encode(f, obj); err != nil {
		f.Close()
		return fmt.Errorf("store %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func encode(f *os.File, obj any) error {
	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(zw).Encode(obj); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// Load decodes the object stored under name into obj and returns its modification time
// A missing object returns an error satisfying errors.Is(err, fs.ErrNotExist)
func (s *Store) Load(name string, obj any) (time.Time, error) {
	f, err := os.Open(s.Path(name))
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return time.Time{}, err
	}

	zr, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return time.Time{}, err
	}
	defer zr.Close()

	if err := msgpack.NewDecoder(zr).Decode(obj); err != nil {
		return time.Time{}, fmt.Errorf("store %s: %w", name, err)
	}
	return fi.ModTime(), nil
}

// Remove deletes the object stored under name, a missing object is not an error
func (s *Store) Remove(name string) error {
	err := os.Remove(s.Path(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
