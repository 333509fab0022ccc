// Package enhance wraps the external prompt-improvement service behind a
// single-call interface.
package enhance

import "context"

// Enhancer rewrites a resolved prompt for clarity without changing its
// intent. Implementations may fail or return nothing useful; callers treat
// any error or empty result as a signal to keep the local text.
type Enhancer interface {
	Enhance(ctx context.Context, prompt string) (string, error)
}
