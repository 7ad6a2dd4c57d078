package path

import (
	"strings"

	"github.com/lazypath/lazypath/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type windowsFormat struct{}

// WindowsFormat is capable of parsing Windows-style pathname strings,
// and stringifying parsed paths in that format as well.
var WindowsFormat Format = windowsFormat{}

func stripWindowsSeparators(p string) string {
	for p != "" && (p[0] == '/' || p[0] == '\\') {
		p = p[1:]
	}
	return p
}

var windowsReservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

func validateWindowsComponent(name string) error {
	if strings.ContainsAny(name, "<>:\"|?*\\/") {
		return status.Error(codes.InvalidArgument, "Name contains reserved characters")
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 0x20 {
			return status.Error(codes.InvalidArgument, "Name contains control characters")
		}
	}
	switch name[len(name)-1] {
	case ' ', '.':
		return status.Error(codes.InvalidArgument, "Name ends with a space or period")
	}
	base := name
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		base = name[:dot]
	}
	if windowsReservedNames[strings.ToUpper(base)] {
		return status.Error(codes.InvalidArgument, "Name is a reserved device name")
	}
	return nil
}

func parseUNCShare(uncPath string) (ParsedPath, error) {
	serverLen := strings.IndexAny(uncPath, "\\/")
	if serverLen == -1 {
		return ParsedPath{}, status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty server and share name")
	}
	if serverLen < 1 {
		return ParsedPath{}, status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty server name")
	}
	server := uncPath[:serverLen]

	shareStart := serverLen + 1
	var share, remainder string
	if shareLen := strings.IndexAny(uncPath[shareStart:], "\\/"); shareLen == -1 {
		share = uncPath[shareStart:]
	} else {
		share = uncPath[shareStart : shareStart+shareLen]
		remainder = uncPath[shareStart+shareLen+1:]
	}
	if share == "" {
		return ParsedPath{}, status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty share name")
	}

	return parseWindowsElements(NewShareRoot(server, share), stripWindowsSeparators(remainder))
}

func parseWindowsElements(root Root, path string) (ParsedPath, error) {
	var elements []Element
	for path != "" {
		var name string
		if separator := strings.IndexAny(path, "/\\"); separator == -1 {
			// Path no longer contains a separator. Consume
			// it entirely.
			name, path = path, ""
		} else {
			name, path = path[:separator], stripWindowsSeparators(path[separator:])
		}
		switch name {
		case ".":
			// An explicit "." entry. It carries no
			// navigational meaning, so it is dropped.
		case "..":
			elements = append(elements, UpElement)
		default:
			if err := validateWindowsComponent(name); err != nil {
				return ParsedPath{}, util.StatusWrapf(err, "Invalid pathname component %#v", name)
			}
			elements = append(elements, Element{name: Component{name: name}})
		}
	}
	return ParsedPath{root: root, elements: elements}, nil
}

func (windowsFormat) Parse(path string) (ParsedPath, error) {
	if strings.ContainsRune(path, '\x00') {
		return ParsedPath{}, status.Error(codes.InvalidArgument, "Path contains a null byte")
	}

	// Handle extended-length paths starting with \\?\ and NT object
	// namespace paths starting with \??\.
	p := path
	if len(p) >= 4 && (strings.HasPrefix(p, "\\\\?\\") || strings.HasPrefix(p, "\\??\\")) {
		p = p[4:]
		// Handle \\?\UNC\ and \??\UNC\.
		if len(p) >= 4 && strings.EqualFold(p[:4], "UNC\\") {
			return parseUNCShare(p[4:])
		}
	}

	if len(p) >= 2 {
		upperDriveLetter := p[0] &^ 0x20
		if upperDriveLetter >= 'A' && upperDriveLetter <= 'Z' && p[1] == ':' {
			return parseWindowsElements(
				NewDriveLetterRoot(rune(upperDriveLetter)),
				stripWindowsSeparators(p[2:]))
		}

		if (p[0] == '\\' || p[0] == '/') && (p[1] == '\\' || p[1] == '/') {
			return parseUNCShare(p[2:])
		}
	}

	if len(p) >= 1 && (p[0] == '\\' || p[0] == '/') {
		return parseWindowsElements(UNIXRoot, stripWindowsSeparators(p))
	}

	return parseWindowsElements(Root{}, p)
}

func (windowsFormat) GetString(s Stringer) (string, error) {
	return s.GetWindowsString()
}
