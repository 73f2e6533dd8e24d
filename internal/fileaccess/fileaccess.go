// Package fileaccess resolves directory resources to their immediate
// children. It is the only collaborator in the locator pipeline that touches
// the filesystem.
package fileaccess

import (
	"context"

	"promptfind/internal/uri"
)

// Entry is an immediate child of a resolved directory.
type Entry struct {
	Name        string
	Resource    uri.URI
	IsDirectory bool
}

// Stat describes a successfully resolved resource.
type Stat struct {
	Resource    uri.URI
	IsDirectory bool
	Children    []Entry
}

// Resolution pairs a requested resource with its outcome. A failed resolution
// carries no detail beyond Success being false.
type Resolution struct {
	Resource uri.URI
	Success  bool
	Stat     Stat
}

// Service lists the immediate children of directories in one batched call.
// Results are returned in request order, one Resolution per input resource.
type Service interface {
	ResolveAll(ctx context.Context, resources []uri.URI) ([]Resolution, error)
}
