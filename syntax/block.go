package syntax

import (
	"strings"

	"github.com/gnoswap-labs/patterns/internal/trie"
)

// NamedBlock is a Unicode block usable in `\p{IsName}`.
type NamedBlock uint8

const (
	BlockBasicLatin NamedBlock = iota
	BlockLatin1Supplement
	BlockLatinExtendedA
	BlockLatinExtendedB
	BlockIPAExtensions
	BlockSpacingModifierLetters
	BlockCombiningDiacriticalMarks
	BlockGreekandCoptic
	BlockCyrillic
	BlockCyrillicSupplement
	BlockArmenian
	BlockHebrew
	BlockArabic
	BlockSyriac
	BlockThaana
	BlockDevanagari
	BlockBengali
	BlockGurmukhi
	BlockGujarati
	BlockOriya
	BlockTamil
	BlockTelugu
	BlockKannada
	BlockMalayalam
	BlockSinhala
	BlockThai
	BlockLao
	BlockTibetan
	BlockMyanmar
	BlockGeorgian
	BlockHangulJamo
	BlockEthiopic
	BlockCherokee
	BlockUnifiedCanadianAboriginalSyllabics
	BlockOgham
	BlockRunic
	BlockTagalog
	BlockHanunoo
	BlockBuhid
	BlockTagbanwa
	BlockKhmer
	BlockMongolian
	BlockLimbu
	BlockTaiLe
	BlockKhmerSymbols
	BlockPhoneticExtensions
	BlockLatinExtendedAdditional
	BlockGreekExtended
	BlockGeneralPunctuation
	BlockSuperscriptsandSubscripts
	BlockCurrencySymbols
	BlockCombiningDiacriticalMarksforSymbols
	BlockLetterlikeSymbols
	BlockNumberForms
	BlockArrows
	BlockMathematicalOperators
	BlockMiscellaneousTechnical
	BlockControlPictures
	BlockOpticalCharacterRecognition
	BlockEnclosedAlphanumerics
	BlockBoxDrawing
	BlockBlockElements
	BlockGeometricShapes
	BlockMiscellaneousSymbols
	BlockDingbats
	BlockMiscellaneousMathematicalSymbolsA
	BlockSupplementalArrowsA
	BlockBraillePatterns
	BlockSupplementalArrowsB
	BlockMiscellaneousMathematicalSymbolsB
	BlockSupplementalMathematicalOperators
	BlockMiscellaneousSymbolsandArrows
	BlockCJKRadicalsSupplement
	BlockKangxiRadicals
	BlockIdeographicDescriptionCharacters
	BlockCJKSymbolsandPunctuation
	BlockHiragana
	BlockKatakana
	BlockBopomofo
	BlockHangulCompatibilityJamo
	BlockKanbun
	BlockBopomofoExtended
	BlockKatakanaPhoneticExtensions
	BlockEnclosedCJKLettersandMonths
	BlockCJKCompatibility
	BlockCJKUnifiedIdeographsExtensionA
	BlockYijingHexagramSymbols
	BlockCJKUnifiedIdeographs
	BlockYiSyllables
	BlockYiRadicals
	BlockHangulSyllables
	BlockHighSurrogates
	BlockHighPrivateUseSurrogates
	BlockLowSurrogates
	BlockPrivateUseArea
	BlockCJKCompatibilityIdeographs
	BlockAlphabeticPresentationForms
	BlockArabicPresentationFormsA
	BlockVariationSelectors
	BlockCombiningHalfMarks
	BlockCJKCompatibilityForms
	BlockSmallFormVariants
	BlockArabicPresentationFormsB
	BlockHalfwidthandFullwidthForms
	BlockSpecials

	blockCount
)

type blockInfo struct {
	name  string
	first rune
	last  rune
}

var blocks = [blockCount]blockInfo{
	BlockBasicLatin:                          {"BasicLatin", 0x0000, 0x007F},
	BlockLatin1Supplement:                    {"Latin-1Supplement", 0x0080, 0x00FF},
	BlockLatinExtendedA:                      {"LatinExtended-A", 0x0100, 0x017F},
	BlockLatinExtendedB:                      {"LatinExtended-B", 0x0180, 0x024F},
	BlockIPAExtensions:                       {"IPAExtensions", 0x0250, 0x02AF},
	BlockSpacingModifierLetters:              {"SpacingModifierLetters", 0x02B0, 0x02FF},
	BlockCombiningDiacriticalMarks:           {"CombiningDiacriticalMarks", 0x0300, 0x036F},
	BlockGreekandCoptic:                      {"GreekandCoptic", 0x0370, 0x03FF},
	BlockCyrillic:                            {"Cyrillic", 0x0400, 0x04FF},
	BlockCyrillicSupplement:                  {"CyrillicSupplement", 0x0500, 0x052F},
	BlockArmenian:                            {"Armenian", 0x0530, 0x058F},
	BlockHebrew:                              {"Hebrew", 0x0590, 0x05FF},
	BlockArabic:                              {"Arabic", 0x0600, 0x06FF},
	BlockSyriac:                              {"Syriac", 0x0700, 0x074F},
	BlockThaana:                              {"Thaana", 0x0780, 0x07BF},
	BlockDevanagari:                          {"Devanagari", 0x0900, 0x097F},
	BlockBengali:                             {"Bengali", 0x0980, 0x09FF},
	BlockGurmukhi:                            {"Gurmukhi", 0x0A00, 0x0A7F},
	BlockGujarati:                            {"Gujarati", 0x0A80, 0x0AFF},
	BlockOriya:                               {"Oriya", 0x0B00, 0x0B7F},
	BlockTamil:                               {"Tamil", 0x0B80, 0x0BFF},
	BlockTelugu:                              {"Telugu", 0x0C00, 0x0C7F},
	BlockKannada:                             {"Kannada", 0x0C80, 0x0CFF},
	BlockMalayalam:                           {"Malayalam", 0x0D00, 0x0D7F},
	BlockSinhala:                             {"Sinhala", 0x0D80, 0x0DFF},
	BlockThai:                                {"Thai", 0x0E00, 0x0E7F},
	BlockLao:                                 {"Lao", 0x0E80, 0x0EFF},
	BlockTibetan:                             {"Tibetan", 0x0F00, 0x0FFF},
	BlockMyanmar:                             {"Myanmar", 0x1000, 0x109F},
	BlockGeorgian:                            {"Georgian", 0x10A0, 0x10FF},
	BlockHangulJamo:                          {"HangulJamo", 0x1100, 0x11FF},
	BlockEthiopic:                            {"Ethiopic", 0x1200, 0x137F},
	BlockCherokee:                            {"Cherokee", 0x13A0, 0x13FF},
	BlockUnifiedCanadianAboriginalSyllabics:  {"UnifiedCanadianAboriginalSyllabics", 0x1400, 0x167F},
	BlockOgham:                               {"Ogham", 0x1680, 0x169F},
	BlockRunic:                               {"Runic", 0x16A0, 0x16FF},
	BlockTagalog:                             {"Tagalog", 0x1700, 0x171F},
	BlockHanunoo:                             {"Hanunoo", 0x1720, 0x173F},
	BlockBuhid:                               {"Buhid", 0x1740, 0x175F},
	BlockTagbanwa:                            {"Tagbanwa", 0x1760, 0x177F},
	BlockKhmer:                               {"Khmer", 0x1780, 0x17FF},
	BlockMongolian:                           {"Mongolian", 0x1800, 0x18AF},
	BlockLimbu:                               {"Limbu", 0x1900, 0x194F},
	BlockTaiLe:                               {"TaiLe", 0x1950, 0x197F},
	BlockKhmerSymbols:                        {"KhmerSymbols", 0x19E0, 0x19FF},
	BlockPhoneticExtensions:                  {"PhoneticExtensions", 0x1D00, 0x1D7F},
	BlockLatinExtendedAdditional:             {"LatinExtendedAdditional", 0x1E00, 0x1EFF},
	BlockGreekExtended:                       {"GreekExtended", 0x1F00, 0x1FFF},
	BlockGeneralPunctuation:                  {"GeneralPunctuation", 0x2000, 0x206F},
	BlockSuperscriptsandSubscripts:           {"SuperscriptsandSubscripts", 0x2070, 0x209F},
	BlockCurrencySymbols:                     {"CurrencySymbols", 0x20A0, 0x20CF},
	BlockCombiningDiacriticalMarksforSymbols: {"CombiningDiacriticalMarksforSymbols", 0x20D0, 0x20FF},
	BlockLetterlikeSymbols:                   {"LetterlikeSymbols", 0x2100, 0x214F},
	BlockNumberForms:                         {"NumberForms", 0x2150, 0x218F},
	BlockArrows:                              {"Arrows", 0x2190, 0x21FF},
	BlockMathematicalOperators:               {"MathematicalOperators", 0x2200, 0x22FF},
	BlockMiscellaneousTechnical:              {"MiscellaneousTechnical", 0x2300, 0x23FF},
	BlockControlPictures:                     {"ControlPictures", 0x2400, 0x243F},
	BlockOpticalCharacterRecognition:         {"OpticalCharacterRecognition", 0x2440, 0x245F},
	BlockEnclosedAlphanumerics:               {"EnclosedAlphanumerics", 0x2460, 0x24FF},
	BlockBoxDrawing:                          {"BoxDrawing", 0x2500, 0x257F},
	BlockBlockElements:                       {"BlockElements", 0x2580, 0x259F},
	BlockGeometricShapes:                     {"GeometricShapes", 0x25A0, 0x25FF},
	BlockMiscellaneousSymbols:                {"MiscellaneousSymbols", 0x2600, 0x26FF},
	BlockDingbats:                            {"Dingbats", 0x2700, 0x27BF},
	BlockMiscellaneousMathematicalSymbolsA:   {"MiscellaneousMathematicalSymbols-A", 0x27C0, 0x27EF},
	BlockSupplementalArrowsA:                 {"SupplementalArrows-A", 0x27F0, 0x27FF},
	BlockBraillePatterns:                     {"BraillePatterns", 0x2800, 0x28FF},
	BlockSupplementalArrowsB:                 {"SupplementalArrows-B", 0x2900, 0x297F},
	BlockMiscellaneousMathematicalSymbolsB:   {"MiscellaneousMathematicalSymbols-B", 0x2980, 0x29FF},
	BlockSupplementalMathematicalOperators:   {"SupplementalMathematicalOperators", 0x2A00, 0x2AFF},
	BlockMiscellaneousSymbolsandArrows:       {"MiscellaneousSymbolsandArrows", 0x2B00, 0x2BFF},
	BlockCJKRadicalsSupplement:               {"CJKRadicalsSupplement", 0x2E80, 0x2EFF},
	BlockKangxiRadicals:                      {"KangxiRadicals", 0x2F00, 0x2FDF},
	BlockIdeographicDescriptionCharacters:    {"IdeographicDescriptionCharacters", 0x2FF0, 0x2FFF},
	BlockCJKSymbolsandPunctuation:            {"CJKSymbolsandPunctuation", 0x3000, 0x303F},
	BlockHiragana:                            {"Hiragana", 0x3040, 0x309F},
	BlockKatakana:                            {"Katakana", 0x30A0, 0x30FF},
	BlockBopomofo:                            {"Bopomofo", 0x3100, 0x312F},
	BlockHangulCompatibilityJamo:             {"HangulCompatibilityJamo", 0x3130, 0x318F},
	BlockKanbun:                              {"Kanbun", 0x3190, 0x319F},
	BlockBopomofoExtended:                    {"BopomofoExtended", 0x31A0, 0x31BF},
	BlockKatakanaPhoneticExtensions:          {"KatakanaPhoneticExtensions", 0x31F0, 0x31FF},
	BlockEnclosedCJKLettersandMonths:         {"EnclosedCJKLettersandMonths", 0x3200, 0x32FF},
	BlockCJKCompatibility:                    {"CJKCompatibility", 0x3300, 0x33FF},
	BlockCJKUnifiedIdeographsExtensionA:      {"CJKUnifiedIdeographsExtensionA", 0x3400, 0x4DBF},
	BlockYijingHexagramSymbols:               {"YijingHexagramSymbols", 0x4DC0, 0x4DFF},
	BlockCJKUnifiedIdeographs:                {"CJKUnifiedIdeographs", 0x4E00, 0x9FFF},
	BlockYiSyllables:                         {"YiSyllables", 0xA000, 0xA48F},
	BlockYiRadicals:                          {"YiRadicals", 0xA490, 0xA4CF},
	BlockHangulSyllables:                     {"HangulSyllables", 0xAC00, 0xD7AF},
	BlockHighSurrogates:                      {"HighSurrogates", 0xD800, 0xDB7F},
	BlockHighPrivateUseSurrogates:            {"HighPrivateUseSurrogates", 0xDB80, 0xDBFF},
	BlockLowSurrogates:                       {"LowSurrogates", 0xDC00, 0xDFFF},
	BlockPrivateUseArea:                      {"PrivateUseArea", 0xE000, 0xF8FF},
	BlockCJKCompatibilityIdeographs:          {"CJKCompatibilityIdeographs", 0xF900, 0xFAFF},
	BlockAlphabeticPresentationForms:         {"AlphabeticPresentationForms", 0xFB00, 0xFB4F},
	BlockArabicPresentationFormsA:            {"ArabicPresentationForms-A", 0xFB50, 0xFDFF},
	BlockVariationSelectors:                  {"VariationSelectors", 0xFE00, 0xFE0F},
	BlockCombiningHalfMarks:                  {"CombiningHalfMarks", 0xFE20, 0xFE2F},
	BlockCJKCompatibilityForms:               {"CJKCompatibilityForms", 0xFE30, 0xFE4F},
	BlockSmallFormVariants:                   {"SmallFormVariants", 0xFE50, 0xFE6F},
	BlockArabicPresentationFormsB:            {"ArabicPresentationForms-B", 0xFE70, 0xFEFF},
	BlockHalfwidthandFullwidthForms:          {"HalfwidthandFullwidthForms", 0xFF00, 0xFFEF},
	BlockSpecials:                            {"Specials", 0xFFF0, 0xFFFF},
}

// BlockPrefix precedes a block name inside `\p{...}`.
const BlockPrefix = "Is"

// Designation returns the name the dialect expects, e.g. "IsBasicLatin".
func (b NamedBlock) Designation() string {
	if b >= blockCount {
		return ""
	}
	return BlockPrefix + blocks[b].name
}

// IsValid reports whether b names a known block.
func (b NamedBlock) IsValid() bool {
	return b < blockCount
}

func (b NamedBlock) String() string {
	if !b.IsValid() {
		return "NamedBlock(invalid)"
	}
	return b.Designation()
}

// Range returns the first and last code point of the block.
func (b NamedBlock) Range() (first, last rune) {
	if b >= blockCount {
		return 0, -1
	}
	return blocks[b].first, blocks[b].last
}

// Contains reports whether r falls inside the block.
func (b NamedBlock) Contains(r rune) bool {
	first, last := b.Range()
	return r >= first && r <= last
}

var blockIndex = func() *trie.Arena[NamedBlock] {
	idx := trie.NewArena[NamedBlock]()
	for i, info := range blocks {
		idx.Insert(info.name, NamedBlock(i))
	}
	return idx
}()

// ParseBlock resolves a designation, with or without the "Is" prefix.
func ParseBlock(designation string) (NamedBlock, bool) {
	return blockIndex.Lookup(strings.TrimPrefix(designation, BlockPrefix))
}

// SuggestBlocks returns the designations closest to an unknown one, each
// with the "Is" prefix.
func SuggestBlocks(designation string) []string {
	names := blockIndex.Closest(strings.TrimPrefix(designation, BlockPrefix))
	for i, n := range names {
		names[i] = BlockPrefix + n
	}
	return names
}
