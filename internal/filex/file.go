// Package filex contains small filesystem helpers: locating the client's
// data directory and loading photo files for multipart uploads.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxPhotoSize caps photo uploads; the backend rejects anything larger.
const maxPhotoSize = 10 << 20 // 10 MiB

// EnsureSubDir creates (if necessary) a subdirectory of the current working
// directory and returns its absolute path. Used for the local state database.
func EnsureSubDir(dirName string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}

	dir := filepath.Join(cwd, dirName)

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// LoadPhoto reads an image file for upload and returns its content and base
// name. Only common image extensions are accepted; oversized files are
// rejected before any bytes hit the wire.
func LoadPhoto(path string) ([]byte, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif":
	default:
		return nil, "", fmt.Errorf("unsupported photo type: %q", filepath.Ext(path))
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.Size() > maxPhotoSize {
		return nil, "", fmt.Errorf("photo %s exceeds %d bytes", path, maxPhotoSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}

	return data, filepath.Base(path), nil
}
