package path

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type unixFormat struct{}

// UNIXFormat is capable of parsing UNIX-style pathname strings, and
// stringifying parsed paths in that format as well.
var UNIXFormat Format = unixFormat{}

func stripOneOrMoreSlashes(p string) string {
	for {
		p = p[1:]
		if p == "" || p[0] != '/' {
			return p
		}
	}
}

func (unixFormat) Parse(path string) (ParsedPath, error) {
	// Unix-style paths are generally passed to system calls that
	// accept C strings. There is no way these can accept null
	// bytes.
	if strings.ContainsRune(path, '\x00') {
		return ParsedPath{}, status.Error(codes.InvalidArgument, "Path contains a null byte")
	}

	var root Root
	if path != "" && path[0] == '/' {
		root = UNIXRoot
		path = stripOneOrMoreSlashes(path)
	}

	var elements []Element
	for path != "" {
		var name string
		if slash := strings.IndexByte(path, '/'); slash == -1 {
			// Path no longer contains a slash. Consume it
			// entirely.
			name, path = path, ""
		} else {
			name, path = path[:slash], stripOneOrMoreSlashes(path[slash:])
		}
		switch name {
		case ".":
			// An explicit "." entry. It carries no
			// navigational meaning, so it is dropped. Empty
			// components cannot occur, as consecutive
			// slashes have already been collapsed above.
		case "..":
			elements = append(elements, UpElement)
		default:
			elements = append(elements, Element{name: Component{name: name}})
		}
	}
	return ParsedPath{root: root, elements: elements}, nil
}

func (unixFormat) GetString(s Stringer) (string, error) {
	return s.GetUNIXString(), nil
}
