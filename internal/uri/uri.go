package uri

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SchemeFile is the scheme used for local filesystem resources.
const SchemeFile = "file"

// maxDepth bounds ancestor walks and overlap resolution so malformed input
// cannot loop forever.
const maxDepth = 128

// URI identifies a filesystem location as a scheme plus a slash-separated
// path. The path is kept verbatim: casing and trailing-slash artifacts are
// preserved so that set membership by path string matches the host exactly.
type URI struct {
	scheme string
	path   string
}

// Parse parses s as a URI. Strings without a scheme are treated as bare file
// paths, relative or absolute.
func Parse(s string) (URI, error) {
	if strings.TrimSpace(s) == "" {
		return URI{}, fmt.Errorf("parse uri: empty input")
	}
	if i := strings.Index(s, "://"); i > 0 {
		scheme := s[:i]
		if !validScheme(scheme) {
			return URI{}, fmt.Errorf("parse uri %q: invalid scheme", s)
		}
		return URI{scheme: scheme, path: s[i+3:]}, nil
	}
	return URI{scheme: SchemeFile, path: filepath.ToSlash(s)}, nil
}

// File builds a file URI from an OS path.
func File(path string) URI {
	return URI{scheme: SchemeFile, path: filepath.ToSlash(path)}
}

func validScheme(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return len(s) > 0
}

// Zero reports whether u is the zero value.
func (u URI) Zero() bool { return u.scheme == "" && u.path == "" }

func (u URI) Scheme() string { return u.scheme }

// Path returns the raw slash-separated path. This is the comparison key used
// for exclusion sets and deduplication.
func (u URI) Path() string { return u.path }

// FSPath returns the path in OS separator form, for handing to the os package.
func (u URI) FSPath() string { return filepath.FromSlash(u.path) }

func (u URI) String() string {
	if u.scheme == "" {
		return u.path
	}
	return u.scheme + "://" + u.path
}

// IsAbsolute reports whether the path component is absolute.
func (u URI) IsAbsolute() bool { return strings.HasPrefix(u.path, "/") }

// Basename returns the final path segment, ignoring a trailing slash. The
// root directory and the empty path have an empty basename.
func (u URI) Basename() string {
	p := strings.TrimSuffix(u.path, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// Dirname returns the parent directory of u. The parent of a single relative
// segment has an empty path; the parent of the root is the root itself.
func (u URI) Dirname() URI {
	p := strings.TrimSuffix(u.path, "/")
	if p == "" && u.path != "" {
		return URI{scheme: u.scheme, path: "/"}
	}
	i := strings.LastIndex(p, "/")
	switch {
	case i < 0:
		return URI{scheme: u.scheme}
	case i == 0:
		return URI{scheme: u.scheme, path: "/"}
	default:
		return URI{scheme: u.scheme, path: p[:i]}
	}
}

// JoinPath appends path elements to u without normalizing the result.
func (u URI) JoinPath(elem ...string) URI {
	p := u.path
	for _, e := range elem {
		e = strings.Trim(e, "/")
		if e == "" {
			continue
		}
		if p == "" {
			p = e
			continue
		}
		p = strings.TrimSuffix(p, "/") + "/" + e
	}
	return URI{scheme: u.scheme, path: p}
}

// RootDirname returns the top-level ancestor directory of u: the last URI on
// the ascent whose parent has an empty basename. A URI that is already at top
// level is returned unchanged.
func RootDirname(u URI) URI {
	for i := 0; i < maxDepth; i++ {
		parent := u.Dirname()
		if parent.Basename() == "" {
			return u
		}
		u = parent
	}
	return u
}

// ResolvePath resolves a string path against base. Absolute paths pass
// through untouched. For relative paths, when the basename of base equals the
// basename of the path's top-level segment the path is resolved one level
// above base instead, so base /foo/bar plus bar/baz yields /foo/bar/baz
// rather than /foo/bar/bar/baz.
func ResolvePath(base URI, path string) (URI, error) {
	parsed, err := Parse(path)
	if err != nil {
		return URI{}, err
	}
	if parsed.IsAbsolute() {
		return parsed, nil
	}
	first := RootDirname(parsed).Basename()
	for i := 0; i < maxDepth; i++ {
		if base.Basename() == "" || base.Basename() != first {
			break
		}
		base = base.Dirname()
	}
	return base.JoinPath(parsed.path), nil
}
