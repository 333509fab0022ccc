// Package generate resolves template bodies against value maps and
// optionally asks the external enhancer to improve the wording.
package generate

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"prompt-designer/enhance"
	"prompt-designer/placeholder"
)

const (
	SourceLocal    = "local"
	SourceEnhanced = "enhanced"
)

// DefaultTimeout bounds a single enhancer call.
const DefaultTimeout = 30 * time.Second

var (
	ErrEmptyTemplate       = errors.New("template is required")
	ErrEnhancerUnavailable = errors.New("enhancer not configured")
)

// Result is the outcome of a single generate call. Note is only set when an
// enhancement attempt was made and the service fell back to the local text.
type Result struct {
	Resolved  string
	Variables []string
	Source    string
	Note      string
}

// Service orchestrates rendering and best-effort enhancement. The enhancer
// may be nil, in which case improve requests fail with
// ErrEnhancerUnavailable.
type Service struct {
	enhancer enhance.Enhancer
	timeout  time.Duration
	log      zerolog.Logger
}

func NewService(enhancer enhance.Enhancer, timeout time.Duration, log zerolog.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{enhancer: enhancer, timeout: timeout, log: log}
}

// Generate renders tmpl against values and extracts its variables. With
// improve set, the resolved text is sent to the enhancer once under a
// bounded timeout; any failure, timeout, or empty result degrades to the
// local rendering with a note instead of an error.
func (s *Service) Generate(ctx context.Context, tmpl string, values map[string]any, improve bool) (Result, error) {
	if tmpl == "" {
		return Result{}, ErrEmptyTemplate
	}

	res := Result{
		Resolved:  placeholder.Render(tmpl, values),
		Variables: placeholder.Extract(tmpl),
		Source:    SourceLocal,
	}
	if !improve {
		return res, nil
	}
	if s.enhancer == nil {
		return Result{}, ErrEnhancerUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	improved, err := s.enhancer.Enhance(ctx, res.Resolved)
	if err == nil && improved == "" {
		err = errors.New("enhancer returned an empty result")
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("enhancement failed, returning local result")
		res.Note = "enhancement failed: " + err.Error()
		return res, nil
	}

	res.Resolved = improved
	res.Source = SourceEnhanced
	return res, nil
}
