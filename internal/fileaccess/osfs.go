package fileaccess

import (
	"context"
	"os"

	"promptfind/internal/logging"
	"promptfind/internal/uri"
)

// OS is the Service backed by the local filesystem. A batch fans out over a
// bounded worker pool but presents a single awaited call.
type OS struct {
	// Concurrency caps the number of directories listed in parallel.
	// Zero means a small default.
	Concurrency int
}

func NewOS() *OS { return &OS{} }

func (s *OS) ResolveAll(ctx context.Context, resources []uri.URI) ([]Resolution, error) {
	results := make([]Resolution, len(resources))
	if len(resources) == 0 {
		return results, nil
	}

	jobs := make(chan int, len(resources))
	for i := range resources {
		jobs <- i
	}
	close(jobs)

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}
	if concurrency > len(resources) {
		concurrency = len(resources)
	}

	done := make(chan struct{})
	worker := func() {
		for i := range jobs {
			select {
			case <-ctx.Done():
				done <- struct{}{}
				return
			default:
			}
			results[i] = resolveDir(resources[i])
		}
		done <- struct{}{}
	}
	for i := 0; i < concurrency; i++ {
		go worker()
	}
	for i := 0; i < concurrency; i++ {
		<-done
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func resolveDir(res uri.URI) Resolution {
	if res.Scheme() != uri.SchemeFile {
		logging.Debug("skipping non-file resource", "uri", res.String())
		return Resolution{Resource: res}
	}
	entries, err := os.ReadDir(res.FSPath())
	if err != nil {
		// Missing or unreadable directories are a normal outcome, not an error.
		logging.Debug("directory did not resolve", "dir", res.Path(), "error", err)
		return Resolution{Resource: res}
	}
	children := make([]Entry, 0, len(entries))
	for _, e := range entries {
		children = append(children, Entry{
			Name:        e.Name(),
			Resource:    res.JoinPath(e.Name()),
			IsDirectory: e.IsDir(),
		})
	}
	return Resolution{
		Resource: res,
		Success:  true,
		Stat:     Stat{Resource: res, IsDirectory: true, Children: children},
	}
}
