package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the root of every error caused by an unusable
	// generator configuration. No password is produced when it is returned.
	ErrConfiguration = errors.New("invalid generator configuration")

	ErrEmptyCharset     = fmt.Errorf("%w: please select at least one character type", ErrConfiguration)
	ErrInvalidLength    = fmt.Errorf("%w: length must be at least 1", ErrConfiguration)
	ErrInvalidWordCount = fmt.Errorf("%w: word count must be at least 1", ErrConfiguration)
)

// PasswordOptions configures the random password generator.
type PasswordOptions struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeAmbiguous bool
	CustomChars      string
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() PasswordOptions {
	return PasswordOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Generator turns configurations plus a stream of random integers into passwords.
type Generator struct {
	source RandomSource
	coin   CoinFlip
}

// NewGenerator creates a Generator. A nil source falls back to CryptoSource and
// a nil coin to math/rand.
func NewGenerator(source RandomSource, coin CoinFlip) *Generator {
	if source == nil {
		source = CryptoSource{}
	}
	if coin == nil {
		coin = defaultCoin
	}
	return &Generator{source: source, coin: coin}
}

// Charset builds the effective character set for opts: every enabled named set
// followed by the custom characters, minus the ambiguous characters when asked.
func Charset(opts PasswordOptions) []rune {
	var charset []rune

	if opts.Uppercase {
		charset = append(charset, []rune(UppercaseChars)...)
	}
	if opts.Lowercase {
		charset = append(charset, []rune(LowercaseChars)...)
	}
	if opts.Numbers {
		charset = append(charset, []rune(NumberChars)...)
	}
	if opts.Symbols {
		charset = append(charset, []rune(SymbolChars)...)
	}
	if opts.CustomChars != "" {
		charset = append(charset, []rune(opts.CustomChars)...)
	}

	if opts.ExcludeAmbiguous {
		charset = withoutChars(charset, AmbiguousChars)
	}
	return charset
}

// Password creates a random password. The i-th character is
// charset[r[i] mod len(charset)] for the i-th drawn integer.
func (g *Generator) Password(opts PasswordOptions) (string, error) {
	if opts.Length < 1 {
		return "", ErrInvalidLength
	}

	charset := Charset(opts)
	if len(charset) == 0 {
		return "", ErrEmptyCharset
	}

	randoms, err := g.source.Uint32s(opts.Length)
	if err != nil {
		return "", err
	}

	result := make([]rune, opts.Length)
	for i := range result {
		result[i] = charset[randoms[i]%uint32(len(charset))]
	}

	return string(result), nil
}
