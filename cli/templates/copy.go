package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/apex/log"
	"github.com/otiai10/copy"
)

const defaultDirPermissions = os.FileMode(0755)

// CopyError is returned if a template tree cannot be copied.
type CopyError struct {
	// Path is a source or destination path the error relates to.
	Path string
	Err  error
}

// Error returns error message.
func (e *CopyError) Error() string {
	return fmt.Sprintf("failed to copy %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *CopyError) Unwrap() error {
	return e.Err
}

// newCopyError creates CopyError for err, path is used if err has no path.
func newCopyError(path string, err error) *CopyError {
	var copyErr *CopyError
	if errors.As(err, &copyErr) {
		return copyErr
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return &CopyError{Path: pathErr.Path, Err: pathErr.Err}
	}
	return &CopyError{Path: path, Err: err}
}

// CopyTree recursively copies src directory into dst skipping excluded entries.
// dst is created if it does not exist. Existing files are overwritten.
func CopyTree(src, dst string, excl *Exclusions) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return &CopyError{Path: src, Err: err}
	}
	if !srcInfo.IsDir() {
		return &CopyError{Path: src, Err: fmt.Errorf("not a directory")}
	}

	if err = os.MkdirAll(dst, defaultDirPermissions); err != nil {
		return &CopyError{Path: dst, Err: err}
	}

	err = copy.Copy(src, dst, copy.Options{
		Skip: func(srcinfo os.FileInfo, srcPath, destPath string) (bool, error) {
			if excl.matchUnder(src, srcPath, srcinfo) {
				log.Debugf("Skipping %s", srcPath)
				return true, nil
			}
			return false, nil
		},
		OnError: func(srcPath, destPath string, err error) error {
			if err == nil {
				return nil
			}
			return newCopyError(srcPath, err)
		},
	})
	if err != nil {
		return newCopyError(src, err)
	}

	if err = os.Chmod(dst, defaultDirPermissions); err != nil {
		return &CopyError{Path: dst, Err: err}
	}
	return nil
}
