package emit

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// CreateFS defines a file system interface that supports creating files and directories.
type CreateFS interface {
	// Sub returns a filesystem for a subdirectory.
	Sub(name string) (sub CreateFS, err error)
	// Create creates a new file for writing.
	Create(name string) (file io.WriteCloser, err error)
	// Mkdir creates a new directory with the specified permissions.
	Mkdir(name string, filemode fs.FileMode) (err error)
}

// MkdirAll returns the CreateFS of the slash separated directory name,
// creating the missing directories along it.
func MkdirAll(filesys CreateFS, name string, filemode fs.FileMode) (sub CreateFS, err error) {
	sub = filesys
	for _, elem := range strings.Split(name, "/") {
		if elem == "" || elem == "." {
			continue
		}
		next, err := sub.Sub(elem)
		if errors.Is(err, fs.ErrNotExist) {
			err = sub.Mkdir(elem, filemode)
			if err != nil {
				return nil, err
			}
			next, err = sub.Sub(elem)
		}
		if err != nil {
			return nil, err
		}
		sub = next
	}
	return
}

// OutputFS returns the DirFS of an operating system directory, creating it
// if needed.
func OutputFS(dir string) (out CreateFS, err error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return
	}
	vol := filepath.VolumeName(abs)
	root := DirFS(vol + string(filepath.Separator))
	return MkdirAll(root, filepath.ToSlash(strings.TrimLeft(abs[len(vol):], string(filepath.Separator))), 0755)
}

// DirFS is a CreateFS rooted at an operating system directory.
type DirFS string

var _ CreateFS = DirFS("")

// Sub implements CreateFS.
func (dir DirFS) Sub(name string) (sub CreateFS, err error) {
	full := filepath.Join(string(dir), filepath.FromSlash(name))
	info, err := os.Stat(full)
	if err != nil {
		return
	}
	if !info.IsDir() {
		err = &fs.PathError{Op: "sub", Path: full, Err: fs.ErrInvalid}
		return
	}
	sub = DirFS(full)
	return
}

// Create implements CreateFS.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	return os.Create(filepath.Join(string(dir), filepath.FromSlash(name)))
}

// Mkdir implements CreateFS.
func (dir DirFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	return os.Mkdir(filepath.Join(string(dir), filepath.FromSlash(name)), filemode)
}

// MemFS is an in-memory CreateFS. Files are keyed by slash separated path,
// directories by their path with a trailing slash.
type MemFS map[string][]byte

// memDir is a subdirectory of a MemFS.
type memDir struct {
	files  MemFS
	prefix string
}

// memFile stores its content in a MemFS when closed.
type memFile struct {
	bytes.Buffer
	files MemFS
	name  string
}

func (file *memFile) Close() error {
	file.files[file.name] = bytes.Clone(file.Bytes())
	return nil
}

var _ CreateFS = MemFS{}

func (dir *memDir) Sub(name string) (sub CreateFS, err error) {
	full := path.Join(dir.prefix, name)
	_, ok := dir.files[full+"/"]
	if !ok {
		err = &fs.PathError{Op: "sub", Path: full, Err: fs.ErrNotExist}
		return
	}
	sub = &memDir{files: dir.files, prefix: full}
	return
}

func (dir *memDir) Create(name string) (file io.WriteCloser, err error) {
	file = &memFile{files: dir.files, name: path.Join(dir.prefix, name)}
	return
}

func (dir *memDir) Mkdir(name string, filemode fs.FileMode) (err error) {
	full := path.Join(dir.prefix, name)
	_, ok := dir.files[full+"/"]
	if ok {
		err = &fs.PathError{Op: "mkdir", Path: full, Err: fs.ErrExist}
		return
	}
	dir.files[full+"/"] = nil
	return
}

// Sub implements CreateFS.
func (mem MemFS) Sub(name string) (sub CreateFS, err error) {
	return (&memDir{files: mem}).Sub(name)
}

// Create implements CreateFS.
func (mem MemFS) Create(name string) (file io.WriteCloser, err error) {
	return (&memDir{files: mem}).Create(name)
}

// Mkdir implements CreateFS.
func (mem MemFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	return (&memDir{files: mem}).Mkdir(name, filemode)
}
