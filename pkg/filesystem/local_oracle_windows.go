//go:build windows

package filesystem

import (
	"os"

	"github.com/lazypath/lazypath/pkg/util"
)

type localOracle struct{}

// NewLocalOracle creates an Oracle that is backed by the file system
// of the locally running operating system. Relative paths are resolved
// relative to the current working directory of the process.
func NewLocalOracle() Oracle {
	return localOracle{}
}

func (localOracle) Lookup(path string) (Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{Kind: KindMissing}, nil
		}
		return Entry{}, util.StatusFromOSError(err)
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Readlink(path)
		if err != nil {
			return Entry{}, util.StatusFromOSError(err)
		}
		return Entry{Kind: KindSymlink, SymlinkTarget: target}, nil
	case info.IsDir():
		return Entry{Kind: KindDirectory}, nil
	default:
		return Entry{Kind: KindFile}, nil
	}
}
