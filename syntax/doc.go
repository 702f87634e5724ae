/*
Package syntax is the token table of the .NET regular expression dialect
targeted by the pattern builder.

It maps abstract syntax fragments to the literal text the dialect expects and
to the short human readable descriptions used by pattern comments:

  - Kind: every construct the builder can emit (anchors, shorthand classes,
    character groups, group delimiters, references, comments, options).
  - QuantifierKind: the repetition suffixes `?`, `*`, `+`, `{n}`, `{n,}`
    and `{n,m}`.
  - GeneralCategory and NamedBlock: the Unicode designations accepted by
    `\p{...}` and `\P{...}`.
  - InlineOptions: the `imnsx` flag letters of `(?imnsx-imnsx)`.
  - IdentifierBoundary: the two spellings of a group name, `<name>` and
    `'name'`.

The package also owns the escaping rules for literal characters, which differ
between the inside and the outside of a character class, and the grammar of
group names.

Nothing here allocates state; every table is a package-level constant or a
read-only map, so the package is safe for concurrent use.
*/
package syntax
