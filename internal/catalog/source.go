// Package catalog provides the sources that materialize the exercise
// catalog consumed by the recommendation pipeline: a mutable in-memory
// store, an HTTP fetch-and-parse source, a local file source and a TTL
// cache wrapper.
package catalog

import (
	"fmt"
	"net/http"
)

// LoadError reports a failed catalog load, carrying the source identifier
// and status detail so operators can tell which upstream broke.
type LoadError struct {
	Source string
	Status int
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("catalog load from %s failed with status %d %s", e.Source, e.Status, http.StatusText(e.Status))
	case e.Err != nil:
		return fmt.Sprintf("catalog load from %s failed: %v", e.Source, e.Err)
	default:
		return fmt.Sprintf("catalog load from %s failed", e.Source)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }
