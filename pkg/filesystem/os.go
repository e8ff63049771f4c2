package filesystem

import (
	"github.com/spf13/afero"

	"github.com/t6modm/t6modm/pkg/types"
)

// NewOS creates a filesystem operating on the host disk
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}

// NewMemory creates an empty in-memory filesystem
func NewMemory() types.FS {
	return NewAferoFS(afero.NewMemMapFs())
}
