package artifact

import (
	"fmt"
	"path/filepath"

	"github.com/conneroisu/expressor/internal/errors"
	"github.com/conneroisu/expressor/internal/naming"
	"github.com/spf13/afero"
)

// Writer places rendered artifacts under a project root. It never
// overwrites a file and never creates directories.
type Writer struct {
	fs        afero.Fs
	root      string
	extension string
}

// NewWriter creates a writer for the project at root.
func NewWriter(fsys afero.Fs, root, extension string) *Writer {
	if extension == "" {
		extension = DefaultExtension
	}

	return &Writer{fs: fsys, root: root, extension: extension}
}

// Root returns the project root the writer resolves paths against.
func (w *Writer) Root() string {
	return w.root
}

// Path returns the output path for an artifact. The file name always
// uses the lowercase form of name.
func (w *Writer) Path(k Kind, name string) (string, error) {
	return OutputPath(w.root, k, naming.Lower(name), w.extension)
}

// Exists reports whether the artifact is already on disk.
func (w *Writer) Exists(k Kind, lower string) (bool, error) {
	path, err := w.Path(k, lower)
	if err != nil {
		return false, err
	}

	ok, err := afero.Exists(w.fs, path)
	if err != nil {
		return false, errors.NewWriteError(errors.ErrCodeWriteFailed, path, err)
	}

	return ok, nil
}

// Write stores content as a new artifact and returns its path.
//
// The existence check happens before the write rather than through an
// exclusive create, so a file appearing in between is overwritten.
func (w *Writer) Write(k Kind, lower, content string) (string, error) {
	path, err := w.Path(k, lower)
	if err != nil {
		return "", err
	}

	exists, err := afero.Exists(w.fs, path)
	if err != nil {
		return "", errors.NewWriteError(errors.ErrCodeWriteFailed, path, err)
	}
	if exists {
		return "", errors.NewAlreadyExistsError(k.Label(), path)
	}

	dir := filepath.Dir(path)
	isDir, err := afero.DirExists(w.fs, dir)
	if err != nil {
		return "", errors.NewWriteError(errors.ErrCodeWriteFailed, dir, err)
	}
	if !isDir {
		return "", errors.NewWriteError(errors.ErrCodeDirectoryMissing, dir,
			fmt.Errorf("directory does not exist"))
	}

	if err := afero.WriteFile(w.fs, path, []byte(content), 0o644); err != nil {
		return "", errors.NewWriteError(errors.ErrCodeWriteFailed, path, err)
	}

	return path, nil
}
