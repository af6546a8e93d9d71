package team

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// LoadRoster reads a YAML roster file of the form
//
//	members:
//	  - name: Hamza
//	    role: Developer
//
// Returns nil, nil if the file does not exist.
func LoadRoster(fs afero.Fs, path string) ([]Member, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("roster file missing", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var r roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}

	// Validate the same way the directory will, so errors name the file.
	if _, err := NewDirectory(r.Members); err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}

	return r.Members, nil
}

// Resolve picks the roster to use: the file at path when it exists and is
// non-empty, then fallback, then DefaultMembers.
func Resolve(fs afero.Fs, path string, fallback []Member) (*Directory, error) {
	if path != "" {
		members, err := LoadRoster(fs, path)
		if err != nil {
			return nil, err
		}
		if len(members) > 0 {
			return NewDirectory(members)
		}
	}
	if len(fallback) > 0 {
		return NewDirectory(fallback)
	}
	return NewDirectory(DefaultMembers())
}
