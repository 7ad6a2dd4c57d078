package path

// Format of pathname strings. A Format both parses pathname strings
// into their lexical elements and stringifies parsed paths back into
// the same format. No filesystem access occurs during either
// operation.
type Format interface {
	Parse(path string) (ParsedPath, error)
	GetString(s Stringer) (string, error)
}
