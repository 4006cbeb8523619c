// Package font implements the gnfnt install pipeline: resolve requested
// families against the catalog, download each archive, verify and extract
// it, and place the font files into the platform fonts directory. Fonts
// are opaque binary blobs throughout; nothing here parses them.
package font

import "strings"

// foldName is the case-insensitive comparison key for font names.
func foldName(name string) string {
	return strings.ToLower(name)
}

// Wildcard is the CLI token requesting every catalog entry.
const Wildcard = "*"

// Request is an immutable, ordered set of requested font names, or the
// wildcard covering the whole catalog. Duplicate names are collapsed to
// the first occurrence; comparison is case-insensitive to match catalog
// resolution, so "FiraCode firacode" is a single attempt.
type Request struct {
	names []string
	all   bool
}

// NewRequest builds a request from CLI arguments. Any wildcard token
// turns the whole request into an install-everything request.
func NewRequest(args []string) Request {
	seen := make(map[string]struct{}, len(args))
	var names []string
	for _, arg := range args {
		if arg == Wildcard {
			return Request{all: true}
		}
		key := foldName(arg)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, arg)
	}
	return Request{names: names}
}

// All reports whether this request covers every catalog entry.
func (r Request) All() bool { return r.all }

// Names returns the requested names in input order. The slice is a copy.
func (r Request) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Status classifies the outcome of one font attempt.
type Status int

const (
	// StatusInstalled means the font was fetched and its files placed.
	StatusInstalled Status = iota
	// StatusSkipped means the font was already present and left alone.
	StatusSkipped
	// StatusFailed means the attempt failed; Outcome.Err has the reason.
	StatusFailed
)

// String returns the summary label for a status.
func (s Status) String() string {
	switch s {
	case StatusInstalled:
		return "installed"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome records the result of one font attempt for the final summary.
type Outcome struct {
	Name   string
	Status Status
	Files  int   // font files placed (installed outcomes only)
	Err    error // failure reason (failed outcomes only)
}

// Report accumulates per-font outcomes across a run.
type Report struct {
	outcomes   []Outcome
	refreshed  bool
	refreshErr error
}

// Add appends an outcome.
func (r *Report) Add(o Outcome) {
	r.outcomes = append(r.outcomes, o)
}

// Outcomes returns all recorded outcomes in attempt order.
func (r *Report) Outcomes() []Outcome {
	return r.outcomes
}

// Installed returns the number of fonts actually installed this run.
func (r *Report) Installed() int { return r.count(StatusInstalled) }

// Skipped returns the number of fonts already present.
func (r *Report) Skipped() int { return r.count(StatusSkipped) }

// Failed returns the number of failed attempts.
func (r *Report) Failed() int { return r.count(StatusFailed) }

// TotalFailure reports whether every attempted font failed. An empty run
// is not a total failure, and already-installed fonts count as clean.
func (r *Report) TotalFailure() bool {
	return len(r.outcomes) > 0 && r.Failed() == len(r.outcomes)
}

// Refreshed reports whether the font cache rebuild ran, and its error.
func (r *Report) Refreshed() (bool, error) {
	return r.refreshed, r.refreshErr
}

func (r *Report) count(s Status) int {
	n := 0
	for _, o := range r.outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}
