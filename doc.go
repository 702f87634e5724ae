/*
Package patterns builds .NET-dialect regular expressions from small, named
building blocks instead of hand-written pattern syntax.

# Overview

A Pattern is an immutable, ordered sequence of nodes. Nodes are created by the
functions of this package and concatenated fluently:

	year := patterns.Must(patterns.NamedGroup("year", patterns.Repeat(patterns.Must(patterns.Exactly(4)), patterns.Digit())))
	date := year.Then(patterns.Char('-'), patterns.Must(patterns.NamedGroup("month", patterns.Repeat(patterns.Must(patterns.Exactly(2)), patterns.Digit()))))
	fmt.Println(date) // (?<year>\d{4})-(?<month>\d{2})

Character classes have their own small algebra:

	lower := patterns.Must(patterns.CharRange('a', 'z'))
	vowels := patterns.Must(patterns.Chars("aeiou"))
	consonant := patterns.Must(patterns.Must(patterns.CharGroupOf(lower)).Except(vowels))
	fmt.Println(consonant) // [a-z-[aeiou]]

# Rendering

Pattern.String renders with DefaultSettings. Pattern.Render accepts Settings
that switch on multi-line formatting, aligned per-line comments, the group
name delimiter style and a few dialect-specific disambiguations. Rendering is
deterministic and has no side effects, so a pattern may be rendered any number
of times, concurrently.

# Errors

Constructors that validate their arguments return an error wrapping one of
the Err* sentinels. Must turns such errors into panics for patterns whose
arguments are constants.

The replacement-pattern counterpart lives in package substitution, and
package engine compiles rendered patterns with github.com/dlclark/regexp2.
*/
package patterns
