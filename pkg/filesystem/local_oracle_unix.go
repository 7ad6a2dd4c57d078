//go:build unix

package filesystem

import (
	"github.com/lazypath/lazypath/pkg/util"

	"golang.org/x/sys/unix"
)

type localOracle struct{}

// NewLocalOracle creates an Oracle that is backed by the file system
// of the locally running operating system. Relative paths are resolved
// relative to the current working directory of the process.
func NewLocalOracle() Oracle {
	return localOracle{}
}

func (localOracle) Lookup(path string) (Entry, error) {
	var stat unix.Stat_t
	if err := unix.Lstat(path, &stat); err != nil {
		if err == unix.ENOENT || err == unix.ENOTDIR {
			return Entry{Kind: KindMissing}, nil
		}
		return Entry{}, util.StatusFromOSError(err)
	}

	switch stat.Mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return Entry{Kind: KindDirectory}, nil
	case unix.S_IFLNK:
		for l := 128; ; l *= 2 {
			b := make([]byte, l)
			n, err := unix.Readlink(path, b)
			if err != nil {
				return Entry{}, util.StatusFromOSError(err)
			}
			if n < l {
				return Entry{
					Kind:          KindSymlink,
					SymlinkTarget: string(b[:n]),
				}, nil
			}
		}
	default:
		return Entry{Kind: KindFile}, nil
	}
}
