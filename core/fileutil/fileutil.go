// Package fileutil provides small file helpers shared by the CLI:
// hashing, buffered reads and cache-dir resolution.
package fileutil

import (
	"bytes"
	"crypto/md5"
	"io"
	"os"
	"path/filepath"
)

const (
	md5BufferSize  = 256 * 1024
	readBufferSize = 512 * 1024
)

const hexDigits = "0123456789ABCDEF"

// HexString renders b as uppercase hex.
func HexString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	out := make([]byte, 0, len(b)*2)
	for _, c := range b {
		out = append(out, hexDigits[c>>4], hexDigits[c&0x0F])
	}
	return string(out)
}

// FileMD5 returns the uppercase hex MD5 digest of the file at path.
func FileMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := md5.New()
	buf := make([]byte, md5BufferSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", err
	}
	return HexString(h.Sum(nil)), nil
}

// MD5Sum returns the uppercase hex MD5 digest of a buffer.
func MD5Sum(data []byte) string {
	sum := md5.Sum(data)
	return HexString(sum[:])
}

// ReadAll reads r to EOF using a large transfer buffer.
func ReadAll(r io.Reader) ([]byte, error) {
	var out bytes.Buffer
	buf := make([]byte, readBufferSize)
	if _, err := io.CopyBuffer(&out, r, buf); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// CacheDir returns a per-user cache directory under name, creating it if
// needed. Falls back to the system temp dir when no cache dir exists.
func CacheDir(name string) string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return os.TempDir()
	}
	return dir
}
