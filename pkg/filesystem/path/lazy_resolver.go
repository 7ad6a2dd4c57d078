package path

import (
	"github.com/lazypath/lazypath/pkg/filesystem"
	"github.com/lazypath/lazypath/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MissingBehavior controls how the resolver treats a ".." component
// whose preceding segment does not exist on the file system.
type MissingBehavior int

const (
	// MissingIsDirectory treats a nonexistent segment like an
	// ordinary directory: the ".." simply removes it. This permits
	// computing parents of paths that have not been created yet.
	MissingIsDirectory MissingBehavior = iota
	// MissingIsError causes resolution to fail with codes.NotFound
	// when a ".." needs to inspect a segment that does not exist.
	MissingIsError
)

// Maximum number of symbolic links that may be encountered during a
// single resolution. This is the same as what Linux supports
// (MAXSYMLINKS in include/linux/namei.h), and bounds both genuine
// cycles and pathologically long chains.
const maximumSymlinkRedirections = 40

// LazyResolver computes parent directories of paths correctly in the
// presence of symbolic links, while performing the minimum possible
// number of filesystem queries.
//
// The directory-traversal semantics of ".." are defined relative to
// the physically resolved location of the preceding segment, not its
// lexical spelling. Stripping the last segment of a path string is
// therefore unsound whenever a ".." follows a segment that is a
// symbolic link. LazyResolver repairs exactly that case: ordinary
// named segments are carried lexically and cost nothing, and only a
// ".." directly following a named segment triggers a query against
// the Oracle, for that one segment.
//
// A LazyResolver holds no mutable state across calls, so a single
// instance may be used concurrently. Relative paths are interpreted by
// the Oracle, which for the local filesystem means relative to the
// process's working directory; callers relying on this must not mutate
// the working directory concurrently.
type LazyResolver struct {
	oracle  filesystem.Oracle
	format  Format
	missing MissingBehavior
}

// NewLazyResolver creates a LazyResolver that queries the provided
// Oracle. The Format is used both to render the paths handed to the
// Oracle and to parse the targets of symbolic links, and should match
// the platform the Oracle describes.
func NewLazyResolver(oracle filesystem.Oracle, format Format, missing MissingBehavior) *LazyResolver {
	return &LazyResolver{
		oracle:  oracle,
		format:  format,
		missing: missing,
	}
}

var errNoParent = status.Error(codes.OutOfRange, "Path has no parent")

// IsNoParent returns whether an error returned by RealParent reports
// the distinguished no-parent outcome: the path denotes a filesystem
// root, or is empty. Callers decide whether to treat this as an error.
func IsNoParent(err error) bool {
	return status.Code(err) == codes.OutOfRange
}

// RealParent returns the parent directory of a path, expanding
// symbolic links as little as possible to maintain physical
// correctness. No attempt is made to canonicalize parts of the path
// that a ".." never traverses.
//
// A path whose final element is a named component is stripped purely
// lexically, without touching the file system. A path whose final
// element is ".." is the dangerous case this resolver exists for: the
// ".." is resolved against the physical identity of what precedes it.
//
// The physical result reports whether any symbolic link expansion took
// place. If it is false, the result is a pure lexical transformation
// of the input.
func (r *LazyResolver) RealParent(p ParsedPath) (parent ParsedPath, physical bool, err error) {
	n := len(p.elements)
	if n == 0 {
		// The root directory, "." or an empty path. There is
		// nothing to remove.
		return ParsedPath{}, false, errNoParent
	}
	elements := p.elements
	if !elements[n-1].IsUp() {
		elements = elements[:n-1]
	}
	return r.resolve(p.root, elements)
}

// RealClean returns a path with ".." elements folded away as much as
// possible, expanding symbolic links only where required for
// correctness. Unlike full canonicalization, segments that no ".."
// traverses are left exactly as written.
func (r *LazyResolver) RealClean(p ParsedPath) (cleaned ParsedPath, physical bool, err error) {
	return r.resolve(p.root, p.elements)
}

// RealParentString is a convenience wrapper around RealParent that
// parses its input and renders its result using the resolver's Format.
func (r *LazyResolver) RealParentString(path string) (string, error) {
	p, err := r.format.Parse(path)
	if err != nil {
		return "", err
	}
	parent, _, err := r.RealParent(p)
	if err != nil {
		return "", err
	}
	return r.format.GetString(parent)
}

// resolutionCursor accumulates the committed prefix of a resolution.
// It starts out lexical; the first time a symbolic link has to be
// expanded to give a ".." its correct meaning, it becomes physical.
// The transition is one-directional within a single resolution.
type resolutionCursor struct {
	root     Root
	elements []Element
	physical bool
}

func (c *resolutionCursor) path() ParsedPath {
	return ParsedPath{root: c.root, elements: c.elements}
}

func (r *LazyResolver) resolve(root Root, elements []Element) (ParsedPath, bool, error) {
	cursor := resolutionCursor{root: root}
	redirectionsLeft := maximumSymlinkRedirections

	remainder := elements
	for len(remainder) > 0 {
		element := remainder[0]
		remainder = remainder[1:]

		if !element.IsUp() {
			// Ordinary names are carried lexically until
			// proven otherwise.
			cursor.elements = append(cursor.elements, element)
			continue
		}

		if len(cursor.elements) == 0 {
			if cursor.root.IsAbsolute() {
				// The parent of the root directory is
				// the root directory itself.
				continue
			}
			// A leading ".." in a relative path has no
			// anchor to remove. It is kept in place rather
			// than rejected, consistent with how shells
			// treat unresolved relative paths.
			cursor.elements = append(cursor.elements, element)
			continue
		}
		if cursor.elements[len(cursor.elements)-1].IsUp() {
			// Only preceded by other ".." elements. Still no
			// anchor.
			cursor.elements = append(cursor.elements, element)
			continue
		}

		// A ".." directly following a named segment. This is
		// the only point at which the file system is consulted:
		// the segment's physical identity determines what the
		// ".." means.
		queryPath, err := r.format.GetString(cursor.path())
		if err != nil {
			return ParsedPath{}, false, err
		}
		entry, err := r.oracle.Lookup(queryPath)
		if err != nil {
			return ParsedPath{}, false, util.StatusWrapf(err, "Failed to look up %#v", queryPath)
		}

		switch entry.Kind {
		case filesystem.KindDirectory:
			cursor.elements = cursor.elements[:len(cursor.elements)-1]

		case filesystem.KindMissing:
			if r.missing == MissingIsError {
				return ParsedPath{}, false, status.Errorf(codes.NotFound, "Path component %#v does not exist", queryPath)
			}
			cursor.elements = cursor.elements[:len(cursor.elements)-1]

		case filesystem.KindFile:
			return ParsedPath{}, false, status.Errorf(codes.FailedPrecondition, "Path component %#v is not a directory", queryPath)

		case filesystem.KindSymlink:
			if redirectionsLeft == 0 {
				return ParsedPath{}, false, status.Error(codes.ResourceExhausted, "Maximum number of symbolic link redirections reached")
			}
			redirectionsLeft--

			target, err := r.format.Parse(entry.SymlinkTarget)
			if err != nil {
				return ParsedPath{}, false, util.StatusWrapf(err, "Invalid target of symbolic link %#v", queryPath)
			}

			// Replace the symlink element by its target. A
			// relative target continues from the symlink's
			// containing directory; an absolute target
			// replaces the committed prefix entirely.
			cursor.elements = cursor.elements[:len(cursor.elements)-1]
			if target.root.IsAbsolute() {
				cursor.root = target.root
				cursor.elements = cursor.elements[:0]
			}
			cursor.physical = true

			// Process the target's own elements, then apply
			// this same ".." again: it must remove the
			// physical directory the link points to, not the
			// link's lexical location. Chained symlinks are
			// handled by this rule reapplying itself.
			spliced := make([]Element, 0, len(target.elements)+1+len(remainder))
			spliced = append(spliced, target.elements...)
			spliced = append(spliced, element)
			spliced = append(spliced, remainder...)
			remainder = spliced
		}
	}

	return cursor.path(), cursor.physical, nil
}
