package filesystem

// EntryKind classifies what a pathname refers to on a file system,
// without following symbolic links.
type EntryKind int

const (
	// KindMissing indicates that no entry exists at the path.
	// Nonexistence is a regular result, not an error, as callers
	// may legitimately operate on paths that have not been created
	// yet.
	KindMissing EntryKind = iota
	// KindFile indicates any entry that is neither a directory nor
	// a symbolic link (regular files, sockets, devices, FIFOs).
	KindFile
	// KindDirectory indicates a directory.
	KindDirectory
	// KindSymlink indicates a symbolic link. Entry.SymlinkTarget
	// holds its literal target string.
	KindSymlink
)

var entryKindNames = [...]string{
	KindMissing:   "Missing",
	KindFile:      "File",
	KindDirectory: "Directory",
	KindSymlink:   "Symlink",
}

func (k EntryKind) String() string {
	return entryKindNames[k]
}

// Entry is the result of a single oracle lookup.
type Entry struct {
	Kind EntryKind

	// SymlinkTarget is the literal target of the symbolic link, as
	// stored on the file system. It is only set when Kind is
	// KindSymlink. The target is not validated or resolved in any
	// way.
	SymlinkTarget string
}

//go:generate mockgen -destination=../../internal/mock/filesystem.go -package=mock github.com/lazypath/lazypath/pkg/filesystem Oracle

// Oracle is a read-only view of symbolic link state on a file system.
// It is the only interface through which path resolution touches the
// file system, which keeps the resolution algorithm itself
// platform-agnostic and trivially testable.
//
// Implementations must not follow symbolic links as part of Lookup(),
// and must report nonexistence through KindMissing instead of an
// error. All other failures (permission denied, device errors) are
// returned as errors.
type Oracle interface {
	Lookup(path string) (Entry, error)
}
