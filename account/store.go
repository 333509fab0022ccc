package account

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Store is the persistent record store behind the directory. Implementations
// return full snapshots; the directory performs read-modify-write cycles and
// serializes them itself.
type Store interface {
	ReadAll() ([]Account, error)
	WriteAll(accounts []Account) error
}

// FileStore keeps all accounts in a single JSON file. Writes go to a temp
// file which is renamed over the target, so a crash mid-write never leaves a
// truncated store behind.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

type usersFile struct {
	Users []Account `json:"users"`
}

// ReadAll loads every account. A missing file reads as an empty store.
func (s *FileStore) ReadAll() ([]Account, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Account{}, nil
		}
		return nil, err
	}

	var f usersFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Users == nil {
		f.Users = []Account{}
	}
	return f.Users, nil
}

// WriteAll replaces the stored account set atomically.
func (s *FileStore) WriteAll(accounts []Account) error {
	if accounts == nil {
		accounts = []Account{}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(usersFile{Users: accounts}, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
