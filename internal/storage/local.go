package storage

import (
	"errors"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
)

type LocalProvider struct {
	// RootPath is the directory holding the uploaded files (e.g. "./uploads")
	RootPath string
}

// NewLocalProvider makes sure the root directory exists.
func NewLocalProvider(root string) (*LocalProvider, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &LocalProvider{RootPath: root}, nil
}

func (l *LocalProvider) path(key string) (string, error) {
	if !filepath.IsLocal(key) {
		return "", ErrNotFound
	}
	return filepath.Join(l.RootPath, filepath.FromSlash(key)), nil
}

func (l *LocalProvider) Put(key string, body io.ReadSeeker, _, _ string) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}

func (l *LocalProvider) Get(key string) (*FileObject, error) {
	path, err := l.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		f.Close()
		return nil, ErrNotFound
	}
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &FileObject{
		Body:          f,
		ContentLength: stat.Size(),
		ContentType:   ct,
		LastModified:  stat.ModTime(),
	}, nil
}
