package syntax

import "github.com/gnoswap-labs/patterns/internal/trie"

// GeneralCategory is a Unicode general category usable in `\p{...}`.
type GeneralCategory uint8

const (
	CategoryLetter GeneralCategory = iota
	CategoryUppercaseLetter
	CategoryLowercaseLetter
	CategoryTitlecaseLetter
	CategoryModifierLetter
	CategoryOtherLetter
	CategoryMark
	CategoryNonspacingMark
	CategorySpacingCombiningMark
	CategoryEnclosingMark
	CategoryNumber
	CategoryDecimalDigitNumber
	CategoryLetterNumber
	CategoryOtherNumber
	CategoryPunctuation
	CategoryConnectorPunctuation
	CategoryDashPunctuation
	CategoryOpenPunctuation
	CategoryClosePunctuation
	CategoryInitialQuotePunctuation
	CategoryFinalQuotePunctuation
	CategoryOtherPunctuation
	CategorySymbol
	CategoryMathSymbol
	CategoryCurrencySymbol
	CategoryModifierSymbol
	CategoryOtherSymbol
	CategorySeparator
	CategorySpaceSeparator
	CategoryLineSeparator
	CategoryParagraphSeparator
	CategoryOther
	CategoryControl
	CategoryFormat
	CategorySurrogate
	CategoryPrivateUse
	CategoryNotAssigned

	categoryCount
)

var categoryDesignations = [categoryCount]string{
	CategoryLetter:                  "L",
	CategoryUppercaseLetter:         "Lu",
	CategoryLowercaseLetter:         "Ll",
	CategoryTitlecaseLetter:         "Lt",
	CategoryModifierLetter:          "Lm",
	CategoryOtherLetter:             "Lo",
	CategoryMark:                    "M",
	CategoryNonspacingMark:          "Mn",
	CategorySpacingCombiningMark:    "Mc",
	CategoryEnclosingMark:           "Me",
	CategoryNumber:                  "N",
	CategoryDecimalDigitNumber:      "Nd",
	CategoryLetterNumber:            "Nl",
	CategoryOtherNumber:             "No",
	CategoryPunctuation:             "P",
	CategoryConnectorPunctuation:    "Pc",
	CategoryDashPunctuation:         "Pd",
	CategoryOpenPunctuation:         "Ps",
	CategoryClosePunctuation:        "Pe",
	CategoryInitialQuotePunctuation: "Pi",
	CategoryFinalQuotePunctuation:   "Pf",
	CategoryOtherPunctuation:        "Po",
	CategorySymbol:                  "S",
	CategoryMathSymbol:              "Sm",
	CategoryCurrencySymbol:          "Sc",
	CategoryModifierSymbol:          "Sk",
	CategoryOtherSymbol:             "So",
	CategorySeparator:               "Z",
	CategorySpaceSeparator:          "Zs",
	CategoryLineSeparator:           "Zl",
	CategoryParagraphSeparator:      "Zp",
	CategoryOther:                   "C",
	CategoryControl:                 "Cc",
	CategoryFormat:                  "Cf",
	CategorySurrogate:               "Cs",
	CategoryPrivateUse:              "Co",
	CategoryNotAssigned:             "Cn",
}

// Designation returns the short name the dialect expects, e.g. "Lu".
func (c GeneralCategory) Designation() string {
	if c >= categoryCount {
		return ""
	}
	return categoryDesignations[c]
}

// IsValid reports whether c names a known category.
func (c GeneralCategory) IsValid() bool {
	return c < categoryCount
}

func (c GeneralCategory) String() string {
	if !c.IsValid() {
		return "GeneralCategory(invalid)"
	}
	return c.Designation()
}

var categoryIndex = func() *trie.Arena[GeneralCategory] {
	idx := trie.NewArena[GeneralCategory]()
	for i, d := range categoryDesignations {
		idx.Insert(d, GeneralCategory(i))
	}
	return idx
}()

// ParseCategory resolves a designation such as "Nd" to its category.
func ParseCategory(designation string) (GeneralCategory, bool) {
	return categoryIndex.Lookup(designation)
}

// SuggestCategories returns the designations closest to an unknown one.
func SuggestCategories(designation string) []string {
	return categoryIndex.Closest(designation)
}
