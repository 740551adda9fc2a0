// Package resource supplies template workbook bytes.
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/mapper"
)

// BuiltinID names the layout rendered by BuiltinLoader.
const BuiltinID = "builtin:lesson-plan"

// ErrNotFound indicates that no resource exists under the requested id.
var ErrNotFound = errors.New("resource not found")

// Loader loads raw resource bytes by id.
type Loader interface {
	Load(id string) ([]byte, error)
}

// FSLoader loads resources as files of an fs.FS.
type FSLoader struct {
	FS fs.FS
}

// NewDirLoader returns a loader reading files below dir.
func NewDirLoader(dir string) *FSLoader {
	return &FSLoader{FS: os.DirFS(dir)}
}

// Load reads the file named id.
func (l *FSLoader) Load(id string) ([]byte, error) {
	data, err := fs.ReadFile(l.FS, id)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", id, err)
	}
	return data, nil
}

// BuiltinLoader renders the packaged lesson-plan template.
type BuiltinLoader struct{}

// Load returns the built-in template for BuiltinID.
func (BuiltinLoader) Load(id string) ([]byte, error) {
	if id != BuiltinID {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return mapper.DefaultTemplate()
}

// ForPath returns the loader and id for a template file path.
// An empty path selects the built-in template.
func ForPath(path string) (Loader, string) {
	if path == "" {
		return BuiltinLoader{}, BuiltinID
	}
	return NewDirLoader(filepath.Dir(path)), filepath.Base(path)
}
