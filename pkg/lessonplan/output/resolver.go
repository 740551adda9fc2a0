// Package output resolves destination paths and writes generated workbooks.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/adrg/xdg"
)

const (
	filePrefix      = "LessonPlan_"
	fileExt         = ".xlsx"
	timestampLayout = "20060102150405"
)

// FileName returns LessonPlan_{yyyyMMddHHmmss}.xlsx, with _{seq} before the
// extension when seq > 0.
func FileName(t time.Time, seq int) string {
	name := filePrefix + t.Format(timestampLayout)
	if seq > 0 {
		name = fmt.Sprintf("%s_%d", name, seq)
	}
	return name + fileExt
}

// Resolver maps a generated file name to an absolute destination path.
type Resolver interface {
	Resolve(fileName string) (string, error)
}

// DirResolver places files in Dir, or DefaultDir when Dir is empty.
type DirResolver struct {
	Dir string
}

// Resolve joins fileName to the resolver's directory, creating the directory if needed.
func (r DirResolver) Resolve(fileName string) (string, error) {
	dir := r.Dir
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	return filepath.Abs(filepath.Join(dir, fileName))
}

// DefaultDir returns the platform's user-visible document folder: Documents
// on Windows, the XDG download directory elsewhere when it exists, else a
// lessonplan folder under the user cache directory.
func DefaultDir() (string, error) {
	if runtime.GOOS == "windows" {
		if xdg.UserDirs.Documents == "" {
			return "", errors.New("no documents directory")
		}
		return xdg.UserDirs.Documents, nil
	}
	if dir := xdg.UserDirs.Download; dir != "" {
		if stat, err := os.Stat(dir); err == nil && stat.IsDir() {
			return dir, nil
		}
	}
	if xdg.CacheHome == "" {
		return "", errors.New("no cache directory")
	}
	return filepath.Join(xdg.CacheHome, "lessonplan"), nil
}

// Exists reports whether something already occupies path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
