// Package engine compiles rendered patterns with github.com/dlclark/regexp2,
// which implements the same dialect, and applies substitutions to matches.
package engine

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/patterns"
	"github.com/gnoswap-labs/patterns/substitution"
)

// Options are the engine options a pattern is compiled with.
type Options struct {
	IgnoreCase      bool
	Multiline       bool
	ExplicitCapture bool
	Singleline      bool
	// IgnorePatternWhitespace is always enabled for formatted patterns.
	IgnorePatternWhitespace bool
	// Timeout bounds a single match operation. Zero means no limit.
	Timeout time.Duration
}

func (o Options) flags(format bool) regexp2.RegexOptions {
	var f regexp2.RegexOptions
	if o.IgnoreCase {
		f |= regexp2.IgnoreCase
	}
	if o.Multiline {
		f |= regexp2.Multiline
	}
	if o.ExplicitCapture {
		f |= regexp2.ExplicitCapture
	}
	if o.Singleline {
		f |= regexp2.Singleline
	}
	if o.IgnorePatternWhitespace || format {
		f |= regexp2.IgnorePatternWhitespace
	}
	return f
}

// Compile renders p with s and compiles the result. nil settings mean
// patterns.DefaultSettings.
func Compile(p patterns.Element, s *patterns.Settings, opts Options) (*regexp2.Regexp, error) {
	if s == nil {
		s = patterns.DefaultSettings()
	}
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	text := p.Pattern().Render(s)
	flags := opts.flags(s.Format)

	re, err := regexp2.Compile(text, flags)
	if err != nil {
		logger.Error("compile pattern",
			zap.String("pattern", text),
			zap.Int32("options", int32(flags)),
			zap.Error(err))
		return nil, fmt.Errorf("compile %q: %w", text, err)
	}
	if opts.Timeout > 0 {
		re.MatchTimeout = opts.Timeout
	}

	logger.Debug("pattern compiled",
		zap.String("pattern", text),
		zap.Int32("options", int32(flags)),
		zap.Duration("timeout", opts.Timeout))
	return re, nil
}

// MustCompile is Compile for patterns known to be valid. It panics on error.
func MustCompile(p patterns.Element, s *patterns.Settings, opts Options) *regexp2.Regexp {
	re, err := Compile(p, s, opts)
	if err != nil {
		panic(err)
	}
	return re
}

// Replace replaces every match of re in input with sub.
func Replace(re *regexp2.Regexp, input string, sub substitution.Element) (string, error) {
	out, err := re.Replace(input, sub.Substitution().String(), -1, -1)
	if err != nil {
		return "", fmt.Errorf("replace: %w", err)
	}
	return out, nil
}
