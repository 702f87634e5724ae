package patterns

import (
	"errors"

	"github.com/gnoswap-labs/patterns/syntax"
)

// Construction errors. Every constructor that can fail wraps one of these
// with the offending argument, so callers can test with errors.Is.
var (
	ErrEmptyChars         = errors.New("character set is empty")
	ErrInvalidRange       = errors.New("range bounds are inverted")
	ErrCodeOutOfRange     = errors.New("character code is out of range")
	ErrInvalidCount       = errors.New("invalid repetition count")
	ErrInvalidGroupName   = syntax.ErrInvalidGroupName
	ErrInvalidComment     = errors.New("invalid inline comment")
	ErrInvalidOptions     = errors.New("invalid inline options")
	ErrNotClassContent    = errors.New("operand cannot be used as character class content")
	ErrNilOperand         = errors.New("operand is empty")
	ErrInvalidSubtraction = errors.New("invalid character subtraction")
	ErrInvalidSettings    = errors.New("invalid settings")
	ErrUnknownProperty    = errors.New("unknown Unicode category or block")
)

// Must returns v or panics with err. It is meant for package-level pattern
// definitions whose arguments are constants.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
