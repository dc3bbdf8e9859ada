package crypto

// Named character sets. They are fixed at startup and never mutated.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	NumberChars    = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	AmbiguousChars = "0oO1lI"
	ConsonantChars = "bcdfghjklmnpqrstvwxyzBCDFGHJKLMNPQRSTVWXYZ"
	VowelChars     = "aeiouAEIOU"
)

// withoutChars returns charset with every rune contained in exclude removed.
// Duplicates in charset that survive are kept.
func withoutChars(charset []rune, exclude string) []rune {
	drop := make(map[rune]struct{}, len(exclude))
	for _, r := range exclude {
		drop[r] = struct{}{}
	}

	kept := make([]rune, 0, len(charset))
	for _, r := range charset {
		if _, ok := drop[r]; ok {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
