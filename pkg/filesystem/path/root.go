package path

type rootKind int

const (
	rootRelative rootKind = iota
	rootUNIX
	rootDrive
	rootShare
)

// Root describes the prefix of a pathname: nothing for relative paths,
// a UNIX root directory, a Windows drive letter, or a UNC share. The
// zero value is the relative root.
type Root struct {
	kind   rootKind
	drive  rune
	server string
	share  string
}

// UNIXRoot is the root directory of a UNIX-style file system
// hierarchy.
var UNIXRoot = Root{kind: rootUNIX}

// NewDriveLetterRoot creates a Root for a Windows drive letter. The
// drive letter is stored in upper case form.
func NewDriveLetterRoot(drive rune) Root {
	return Root{kind: rootDrive, drive: drive &^ 0x20}
}

// NewShareRoot creates a Root for a UNC share.
func NewShareRoot(server, share string) Root {
	return Root{kind: rootShare, server: server, share: share}
}

// IsAbsolute returns whether paths having this root are absolute.
func (r Root) IsAbsolute() bool {
	return r.kind != rootRelative
}
