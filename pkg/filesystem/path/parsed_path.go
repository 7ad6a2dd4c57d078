package path

import (
	"strings"

	"github.com/lazypath/lazypath/pkg/util"
)

// ParsedPath is the result of parsing a pathname string: a Root
// describing its prefix and an ordered sequence of lexical elements.
// Element order is traversal order. ParsedPath values are immutable
// once created; resolution operates on copies of their contents.
type ParsedPath struct {
	root     Root
	elements []Element
}

var _ Stringer = ParsedPath{}

// NewParsedPath creates a ParsedPath from a root and a sequence of
// elements. The element sequence is copied.
func NewParsedPath(root Root, elements []Element) ParsedPath {
	return ParsedPath{
		root:     root,
		elements: append([]Element(nil), elements...),
	}
}

// Root returns the root of the path.
func (p ParsedPath) Root() Root {
	return p.root
}

// Elements returns a copy of the path's lexical elements.
func (p ParsedPath) Elements() []Element {
	return append([]Element(nil), p.elements...)
}

// IsAbsolute returns whether the path is absolute.
func (p ParsedPath) IsAbsolute() bool {
	return p.root.IsAbsolute()
}

func (p ParsedPath) writeElements(separator byte, sb *strings.Builder) {
	for i, element := range p.elements {
		if i > 0 {
			sb.WriteByte(separator)
		}
		sb.WriteString(element.String())
	}
}

// GetUNIXString returns a string representation of the path for use on
// UNIX-like operating systems. Drive letter and UNC share roots have
// no native UNIX representation; they are emitted with forward slash
// separators ("C:/...", "//server/share/...").
func (p ParsedPath) GetUNIXString() string {
	var prefix string
	switch p.root.kind {
	case rootRelative:
		if len(p.elements) == 0 {
			return "."
		}
	case rootUNIX:
		prefix = "/"
	case rootDrive:
		prefix = string(p.root.drive) + ":/"
	case rootShare:
		prefix = "//" + p.root.server + "/" + p.root.share
		if len(p.elements) == 0 {
			return prefix
		}
		prefix += "/"
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	p.writeElements('/', &sb)
	return sb.String()
}

// GetWindowsString returns a string representation of the path for use
// on Windows. It fails when the path contains a component that is not
// representable in a Windows filename.
func (p ParsedPath) GetWindowsString() (string, error) {
	for _, element := range p.elements {
		if element.IsUp() {
			continue
		}
		componentStr := element.Name().String()
		if err := validateWindowsComponent(componentStr); err != nil {
			return "", util.StatusWrapf(err, "Invalid pathname component %#v", componentStr)
		}
	}

	var prefix string
	switch p.root.kind {
	case rootRelative:
		if len(p.elements) == 0 {
			return ".", nil
		}
	case rootUNIX:
		prefix = "\\"
	case rootDrive:
		prefix = string(p.root.drive) + ":\\"
	case rootShare:
		prefix = "\\\\" + p.root.server + "\\" + p.root.share
		if len(p.elements) == 0 {
			return prefix, nil
		}
		prefix += "\\"
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	p.writeElements('\\', &sb)
	return sb.String(), nil
}
