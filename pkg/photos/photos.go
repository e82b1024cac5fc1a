// Package photos supplies the photo-load dependency: given an opaque picked
// reference, asynchronously return raw bytes or nothing.
package photos

import (
	"context"
	"os"
)

// Ref is an opaque reference to a picked photo. The live loader treats it as
// a file path.
type Ref string

// Loader resolves a picked reference to its raw bytes.
type Loader interface {
	Load(ctx context.Context, ref Ref) ([]byte, error)
}

// FileLoader reads the referenced file from disk.
type FileLoader struct{}

// Load implements Loader.
func (FileLoader) Load(ctx context.Context, ref Ref) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(string(ref))
}

// Static serves canned bytes keyed by reference, for tests.
type Static map[Ref][]byte

// Load implements Loader.
func (s Static) Load(_ context.Context, ref Ref) ([]byte, error) {
	if b, ok := s[ref]; ok {
		return b, nil
	}
	return nil, os.ErrNotExist
}
