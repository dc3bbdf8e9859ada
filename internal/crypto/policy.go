package crypto

import (
	"fmt"
	"sort"
)

// ErrUnknownPolicy is returned for a policy template name that does not exist.
var ErrUnknownPolicy = fmt.Errorf("%w: unknown policy template", ErrConfiguration)

// Policy is a named preset for the random password generator.
type Policy struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeAmbiguous bool
}

var policies = map[string]Policy{
	"basic": {
		Length: 8, Uppercase: true, Lowercase: true,
	},
	"corporate": {
		Length: 12, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true, ExcludeAmbiguous: true,
	},
	"banking": {
		Length: 16, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true, ExcludeAmbiguous: true,
	},
	"high-security": {
		Length: 20, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true, ExcludeAmbiguous: true,
	},
}

// PolicyNames lists the available templates in alphabetical order.
func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPolicy overrides the length and category flags of opts with the named
// template. CustomChars is left untouched.
func ApplyPolicy(name string, opts PasswordOptions) (PasswordOptions, error) {
	p, ok := policies[name]
	if !ok {
		return opts, fmt.Errorf("%w %q", ErrUnknownPolicy, name)
	}

	opts.Length = p.Length
	opts.Uppercase = p.Uppercase
	opts.Lowercase = p.Lowercase
	opts.Numbers = p.Numbers
	opts.Symbols = p.Symbols
	opts.ExcludeAmbiguous = p.ExcludeAmbiguous
	return opts, nil
}
