// Package manifest reads the scripts section of a project's package.json
package manifest

import (
	"errors"
	"fmt"

	"github.com/scriptsleuth/script-sleuth/internal/jsonutil"
	"github.com/spf13/afero"
)

// DefaultFile is the manifest file name looked up in the working directory
const DefaultFile = "package.json"

// ErrUnavailable is returned when the manifest is missing, unreadable or not
// a JSON object. A readable manifest without scripts is not an error.
var ErrUnavailable = errors.New("manifest unavailable")

// FsFactory returns the filesystem manifests are read from
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Script is one named command of the manifest
type Script struct {
	Name    string
	Command string
}

// Manifest is the part of package.json script-sleuth consumes
type Manifest struct {
	Path        string
	Name        string
	Version     string
	Description string
	Scripts     []Script // in document order
}

// Load reads and parses the manifest at path from fs
func Load(fs afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}
	m.Path = path
	return m, nil
}

// Parse decodes manifest JSON.
// Script values that are not strings are skipped.
func Parse(data []byte) (*Manifest, error) {
	entries, err := jsonutil.ObjectEntries(data)
	if err != nil {
		return nil, err
	}

	m := &Manifest{
		Name:        jsonutil.GetString(entries, "name"),
		Version:     jsonutil.GetString(entries, "version"),
		Description: jsonutil.GetString(entries, "description"),
	}

	raw, ok := jsonutil.Find(entries, "scripts")
	if !ok || jsonutil.IsNull(raw) {
		return m, nil
	}

	scripts, err := jsonutil.ObjectEntries(raw)
	if err != nil {
		// scripts that is not an object carries no commands
		return m, nil
	}
	for _, e := range scripts {
		command, ok := jsonutil.AsString(e.Value)
		if !ok {
			continue
		}
		m.Scripts = append(m.Scripts, Script{Name: e.Key, Command: command})
	}
	return m, nil
}

// Lookup returns the script with the given name
func (m *Manifest) Lookup(name string) (Script, bool) {
	for _, s := range m.Scripts {
		if s.Name == name {
			return s, true
		}
	}
	return Script{}, false
}
