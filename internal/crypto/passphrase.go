package crypto

import (
	"fmt"
	"strings"
)

// PassphraseOptions configures the passphrase generator.
type PassphraseOptions struct {
	WordCount    int
	Separator    string
	Capitalize   bool
	AppendNumber bool
}

// DefaultPassphraseOptions returns four hyphen-separated words.
func DefaultPassphraseOptions() PassphraseOptions {
	return PassphraseOptions{
		WordCount: 4,
		Separator: "-",
	}
}

// Passphrase joins WordCount dictionary words with Separator. With
// AppendNumber a zero-padded three digit number follows the last word directly.
func (g *Generator) Passphrase(opts PassphraseOptions) (string, error) {
	if opts.WordCount < 1 {
		return "", ErrInvalidWordCount
	}

	randoms, err := g.source.Uint32s(opts.WordCount)
	if err != nil {
		return "", err
	}

	words := make([]string, opts.WordCount)
	for i, r := range randoms {
		word := wordList[r%uint32(len(wordList))]
		if opts.Capitalize {
			word = strings.ToUpper(word[:1]) + word[1:]
		}
		words[i] = word
	}

	passphrase := strings.Join(words, opts.Separator)

	if opts.AppendNumber {
		// Two integers are drawn; only the first is used.
		numbers, err := g.source.Uint32s(2)
		if err != nil {
			return "", err
		}
		passphrase += fmt.Sprintf("%03d", numbers[0]%1000)
	}

	return passphrase, nil
}
