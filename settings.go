package patterns

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/patterns/syntax"
)

// DefaultIndentSize is the indent width used by DefaultSettings.
const DefaultIndentSize = 4

// Settings controls how a pattern is rendered. Settings are read-only once
// passed to Render.
type Settings struct {
	// Format puts every element on its own line and indents group content.
	// The output must be compiled with the whitespace-ignoring option.
	Format bool
	// Comment appends an aligned "# description" to every formatted line.
	// It requires Format.
	Comment bool
	// IdentifierBoundary selects <name> or 'name' for group names.
	IdentifierBoundary syntax.IdentifierBoundary
	// IndentSize is the number of spaces per nesting level in format mode.
	// Values below 1 are treated as 1.
	IndentSize int
	// SeparateGroupNumberReference appends an empty noncapturing group
	// after an unquantified numbered back-reference, so that \1 followed by
	// a digit is not read as a reference to group 10 and above.
	SeparateGroupNumberReference bool
	// ConditionAsAssertion renders the test of a conditional as an explicit
	// lookahead: (?(?=test)yes|no).
	ConditionAsAssertion bool
	// ColorComments styles comments for terminal output.
	ColorComments bool
	// Logger receives render statistics at debug level. nil disables
	// logging.
	Logger *zap.Logger
}

// DefaultSettings returns the settings used by Pattern.String: a single
// line, angle-bracket group names.
func DefaultSettings() *Settings {
	return &Settings{IndentSize: DefaultIndentSize}
}

// Validate reports settings that cannot be rendered.
func (s *Settings) Validate() error {
	if s.Comment && !s.Format {
		return fmt.Errorf("%w: comment requires format", ErrInvalidSettings)
	}
	switch s.IdentifierBoundary {
	case syntax.AngleBrackets, syntax.Apostrophes:
	default:
		return fmt.Errorf("%w: unknown identifier boundary %d", ErrInvalidSettings, s.IdentifierBoundary)
	}
	return nil
}

func (s *Settings) indentSize() int {
	return max(s.IndentSize, 1)
}

func (s *Settings) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// settingsFile is the YAML shape of Settings.
type settingsFile struct {
	Format                       bool   `yaml:"format"`
	Comment                      bool   `yaml:"comment"`
	IdentifierBoundary           string `yaml:"identifier_boundary"`
	IndentSize                   *int   `yaml:"indent_size"`
	SeparateGroupNumberReference bool   `yaml:"separate_group_number_reference"`
	ConditionAsAssertion         bool   `yaml:"condition_as_assertion"`
	ColorComments                bool   `yaml:"color_comments"`
}

// ParseSettings decodes YAML settings. Missing keys keep their
// DefaultSettings values; an indent size below 1 is clamped and logged.
func ParseSettings(data []byte, logger *zap.Logger) (*Settings, error) {
	var f settingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	boundary, err := syntax.ParseIdentifierBoundary(f.IdentifierBoundary)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	s := DefaultSettings()
	s.Format = f.Format
	s.Comment = f.Comment
	s.IdentifierBoundary = boundary
	s.SeparateGroupNumberReference = f.SeparateGroupNumberReference
	s.ConditionAsAssertion = f.ConditionAsAssertion
	s.ColorComments = f.ColorComments
	s.Logger = logger

	if f.IndentSize != nil {
		s.IndentSize = *f.IndentSize
		if s.IndentSize < 1 {
			s.logger().Warn("indent size clamped",
				zap.Int("configured", s.IndentSize),
				zap.Int("used", 1))
			s.IndentSize = 1
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadSettings reads YAML settings from path.
func LoadSettings(path string, logger *zap.Logger) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return ParseSettings(data, logger)
}
