package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestPassword(t *testing.T) {
	tests := []struct {
		name    string
		opts    PasswordOptions
		wantErr error
	}{
		{
			name: "default options",
			opts: DefaultOptions(),
		},
		{
			name: "uppercase only",
			opts: PasswordOptions{Length: 16, Uppercase: true},
		},
		{
			name: "custom characters only",
			opts: PasswordOptions{Length: 12, CustomChars: "xyz"},
		},
		{
			name: "single character",
			opts: PasswordOptions{Length: 1, Numbers: true},
		},
		{
			name: "long password",
			opts: PasswordOptions{Length: 256, Lowercase: true},
		},
		{
			name:    "no character types selected",
			opts:    PasswordOptions{Length: 16},
			wantErr: ErrEmptyCharset,
		},
		{
			name:    "everything excluded as ambiguous",
			opts:    PasswordOptions{Length: 16, CustomChars: "0O1l", ExcludeAmbiguous: true},
			wantErr: ErrEmptyCharset,
		},
		{
			name:    "zero length",
			opts:    PasswordOptions{Length: 0, Lowercase: true},
			wantErr: ErrInvalidLength,
		},
	}

	gen := NewGenerator(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := gen.Password(tt.opts)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Password() error = %v, want %v", err, tt.wantErr)
				}
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("Password() error = %v, want a configuration error", err)
				}
				if result != "" {
					t.Error("Password() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Password() unexpected error: %v", err)
			}
			if n := len([]rune(result)); n != tt.opts.Length {
				t.Errorf("Password() length = %d, want %d", n, tt.opts.Length)
			}
			charset := string(Charset(tt.opts))
			for _, ch := range result {
				if !strings.ContainsRune(charset, ch) {
					t.Errorf("password contains %q outside the effective charset", ch)
				}
			}
		})
	}
}

func TestPasswordIndexesCharsetByModulo(t *testing.T) {
	src := &sequenceSource{values: []uint32{0, 1, 25, 26, 27}}
	gen := NewGenerator(src, nil)

	got, err := gen.Password(PasswordOptions{Length: 5, Uppercase: true})
	if err != nil {
		t.Fatalf("Password() unexpected error: %v", err)
	}
	if got != "ABZAB" {
		t.Errorf("Password() = %q, want %q", got, "ABZAB")
	}
	if len(src.calls) != 1 || src.calls[0] != 5 {
		t.Errorf("random draws = %v, want a single draw of 5", src.calls)
	}
}

func TestPasswordExcludeAmbiguous(t *testing.T) {
	opts := PasswordOptions{
		Length: 64, Uppercase: true, Lowercase: true, Numbers: true,
		CustomChars: "01lIoO", ExcludeAmbiguous: true,
	}
	gen := NewGenerator(nil, nil)

	for i := 0; i < 50; i++ {
		password, err := gen.Password(opts)
		if err != nil {
			t.Fatalf("Password() unexpected error: %v", err)
		}
		if strings.ContainsAny(password, AmbiguousChars) {
			t.Fatalf("password %q contains an ambiguous character", password)
		}
	}
}

func TestCharsetKeepsDuplicates(t *testing.T) {
	got := string(Charset(PasswordOptions{Numbers: true, CustomChars: "99"}))
	if got != NumberChars+"99" {
		t.Errorf("Charset() = %q, want %q", got, NumberChars+"99")
	}
}

func TestCharsetRemovesRegexpMetacharacters(t *testing.T) {
	got := string(Charset(PasswordOptions{CustomChars: ".*O+", ExcludeAmbiguous: true}))
	if got != ".*+" {
		t.Errorf("Charset() = %q, want %q", got, ".*+")
	}
}

func TestPasswordMultibyteCustomChars(t *testing.T) {
	src := &sequenceSource{values: []uint32{0, 1, 2}}
	got, err := NewGenerator(src, nil).Password(PasswordOptions{Length: 3, CustomChars: "äöü"})
	if err != nil {
		t.Fatalf("Password() unexpected error: %v", err)
	}
	if got != "äöü" {
		t.Errorf("Password() = %q, want %q", got, "äöü")
	}
}

func TestPasswordSourceError(t *testing.T) {
	_, err := NewGenerator(failingSource{}, nil).Password(DefaultOptions())
	if !errors.Is(err, errSourceDown) {
		t.Errorf("Password() error = %v, want %v", err, errSourceDown)
	}
}

func TestCryptoSource(t *testing.T) {
	values, err := CryptoSource{}.Uint32s(32)
	if err != nil {
		t.Fatalf("Uint32s() unexpected error: %v", err)
	}
	if len(values) != 32 {
		t.Errorf("Uint32s() returned %d values, want 32", len(values))
	}

	empty, err := CryptoSource{}.Uint32s(0)
	if err != nil || len(empty) != 0 {
		t.Errorf("Uint32s(0) = %v, %v; want empty, nil", empty, err)
	}
}

func TestPasswordProducesUniquePasswords(t *testing.T) {
	gen := NewGenerator(nil, nil)
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := gen.Password(DefaultOptions())
		if err != nil {
			t.Fatalf("Password() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}
