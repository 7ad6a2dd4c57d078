package path

// Element is a single lexical element of a parsed pathname: either a
// parent directory traversal ("..") or a named component. "." elements
// carry no navigational meaning and are already dropped during
// parsing, so they have no representation here.
type Element struct {
	name Component
	up   bool
}

// UpElement is the element representing a parent directory traversal.
var UpElement = Element{up: true}

// NewNamedElement wraps a pathname component into an element.
func NewNamedElement(c Component) Element {
	return Element{name: c}
}

// IsUp returns whether the element is a parent directory traversal.
func (e Element) IsUp() bool {
	return e.up
}

// Name returns the component of a named element. It panics when called
// on UpElement.
func (e Element) Name() Component {
	if e.up {
		panic("Element is a parent directory traversal")
	}
	return e.name
}

func (e Element) String() string {
	if e.up {
		return ".."
	}
	return e.name.String()
}
