// Package settings provides the durable key/value store backing theme
// overrides and other persisted tool state. Values are addressed by
// (key, section) pairs and kept in a single ini file; a lookup miss
// yields the caller-supplied default, never an error.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Store wraps a viper instance bound to one ini file. The store is
// owned by a single process and loaded/saved once per session at the
// process boundaries.
type Store struct {
	v    *viper.Viper
	path string
}

// Open binds a store to path and loads it if the file exists. A
// missing file is not an error: the store simply starts empty.
func Open(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
	}
	return &Store{v: v, path: path}, nil
}

// Save writes the store back to its file, creating parent directories
// as needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}
	return nil
}

// Path returns the file the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// raw returns the stored string for (key, section) and whether it is
// present. Blank values count as absent: erasing an override stores a
// blank rather than deleting the key.
func (s *Store) raw(key, section string) (string, bool) {
	full := section + "." + key
	if !s.v.IsSet(full) {
		return "", false
	}
	val := s.v.GetString(full)
	if val == "" {
		return "", false
	}
	return val, true
}

// GetStr returns the stored string, or def when absent.
func (s *Store) GetStr(key, def, section string) string {
	if val, ok := s.raw(key, section); ok {
		return val
	}
	return def
}

// GetInt returns the stored 32-bit integer, or def when absent or
// unparseable.
func (s *Store) GetInt(key string, def int32, section string) int32 {
	if val, ok := s.raw(key, section); ok {
		if n, err := strconv.ParseInt(val, 10, 32); err == nil {
			return int32(n)
		}
	}
	return def
}

// GetFloat returns the stored float, or def when absent or unparseable.
func (s *Store) GetFloat(key string, def float64, section string) float64 {
	if val, ok := s.raw(key, section); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return def
}

// GetUint64 returns the stored 64-bit unsigned integer, or def when
// absent or unparseable.
func (s *Store) GetUint64(key string, def uint64, section string) uint64 {
	if val, ok := s.raw(key, section); ok {
		if n, err := strconv.ParseUint(val, 10, 64); err == nil {
			return n
		}
	}
	return def
}

// PutStr stores a string under (key, section). Storing a blank string
// is the erase convention: the key remains but reads as absent.
func (s *Store) PutStr(key, val, section string) {
	s.v.Set(section+"."+key, val)
}

// PutInt stores a 32-bit integer under (key, section).
func (s *Store) PutInt(key string, val int32, section string) {
	s.v.Set(section+"."+key, strconv.FormatInt(int64(val), 10))
}

// PutFloat stores a float under (key, section).
func (s *Store) PutFloat(key string, val float64, section string) {
	s.v.Set(section+"."+key, strconv.FormatFloat(val, 'g', -1, 64))
}

// PutUint64 stores a 64-bit unsigned integer under (key, section).
// Values are persisted in decimal so the ini file stays portable.
func (s *Store) PutUint64(key string, val uint64, section string) {
	s.v.Set(section+"."+key, strconv.FormatUint(val, 10))
}
