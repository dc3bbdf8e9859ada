package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/repository"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func newTestGeneratorService() (*GeneratorService, *HistoryService) {
	history, _ := newTestHistory(repository.NewMemoryStore())
	return NewGeneratorService(crypto.NewGenerator(nil, nil), history), history
}

func TestGenerate_Defaults(t *testing.T) {
	svc, history := newTestGeneratorService()

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Mode != model.ModePassword {
		t.Errorf("expected mode password, got %q", resp.Mode)
	}
	if len(resp.Password) != DefaultLength {
		t.Errorf("expected password length %d, got %d", DefaultLength, len(resp.Password))
	}
	if resp.Entry == nil || resp.Entry.Password != resp.Password {
		t.Fatal("expected the password to be recorded in history")
	}
	if resp.Strength.Score != resp.Entry.Strength {
		t.Errorf("expected strength %d, got %d", resp.Entry.Strength, resp.Strength.Score)
	}
	if history.Len() != 1 {
		t.Errorf("expected 1 history entry, got %d", history.Len())
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc, _ := newTestGeneratorService()
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Password) != 32 {
		t.Errorf("expected password length 32, got %d", len(resp.Password))
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_Passphrase(t *testing.T) {
	svc := NewGeneratorService(fixedGenerator(0), nil)

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{
		Mode:       "passphrase",
		WordCount:  3,
		Separator:  strPtr("."),
		Capitalize: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Password != "Able.Able.Able" {
		t.Errorf("expected %q, got %q", "Able.Able.Able", resp.Password)
	}
	if resp.Entry != nil {
		t.Error("expected no history entry without a history service")
	}
}

func TestGenerate_PassphraseDefaults(t *testing.T) {
	svc := NewGeneratorService(fixedGenerator(0), nil)

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{Mode: "passphrase"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(resp.Password, DefaultSeparator); got != DefaultWordCount-1 {
		t.Errorf("expected %d separators, got %d in %q", DefaultWordCount-1, got, resp.Password)
	}
}

func TestGenerate_Pronounceable(t *testing.T) {
	svc := NewGeneratorService(fixedGenerator(1), nil)

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{Mode: "pronounceable", Length: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Coin is fixed to vowel-first; index 1 into each set.
	if resp.Password != "ecec" {
		t.Errorf("expected %q, got %q", "ecec", resp.Password)
	}
}

func TestGenerate_Policy(t *testing.T) {
	svc, _ := newTestGeneratorService()

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{Policy: "banking", Length: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected policy length 16, got %d", len(resp.Password))
	}
	if strings.ContainsAny(resp.Password, crypto.AmbiguousChars) {
		t.Errorf("expected no ambiguous characters in %q", resp.Password)
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     model.GenerateRequest
		wantErr error
	}{
		{
			name:    "unknown mode",
			req:     model.GenerateRequest{Mode: "emoji"},
			wantErr: model.ErrUnknownMode,
		},
		{
			name:    "length too long",
			req:     model.GenerateRequest{Length: 200},
			wantErr: ErrLengthTooLong,
		},
		{
			name:    "negative length",
			req:     model.GenerateRequest{Length: -1},
			wantErr: crypto.ErrInvalidLength,
		},
		{
			name: "no character types",
			req: model.GenerateRequest{
				Length:    16,
				Uppercase: boolPtr(false),
				Lowercase: boolPtr(false),
				Numbers:   boolPtr(false),
				Symbols:   boolPtr(false),
			},
			wantErr: crypto.ErrEmptyCharset,
		},
		{
			name:    "unknown policy",
			req:     model.GenerateRequest{Policy: "military"},
			wantErr: crypto.ErrUnknownPolicy,
		},
		{
			name:    "too many words",
			req:     model.GenerateRequest{Mode: "passphrase", WordCount: 50},
			wantErr: ErrTooManyWords,
		},
		{
			name:    "negative word count",
			req:     model.GenerateRequest{Mode: "passphrase", WordCount: -2},
			wantErr: crypto.ErrInvalidWordCount,
		},
		{
			name:    "pronounceable too long",
			req:     model.GenerateRequest{Mode: "pronounceable", Length: 500},
			wantErr: ErrLengthTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, history := newTestGeneratorService()

			_, err := svc.Generate(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if history.Len() != 0 {
				t.Error("expected no history entry after a failed generation")
			}
		})
	}
}

func TestBatch(t *testing.T) {
	svc, history := newTestGeneratorService()

	resp, err := svc.Batch(model.GenerateRequest{Mode: "pronounceable", Count: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Passwords) != 5 {
		t.Errorf("expected 5 passwords, got %d", len(resp.Passwords))
	}
	if history.Len() != 0 {
		t.Error("expected batch generation not to touch history")
	}
}

func TestBatch_InvalidCount(t *testing.T) {
	svc, _ := newTestGeneratorService()

	for _, n := range []int{0, -1, MaxBatch + 1} {
		if _, err := svc.Batch(model.GenerateRequest{Count: n}); !errors.Is(err, ErrInvalidBatchSize) {
			t.Errorf("count %d: expected ErrInvalidBatchSize, got %v", n, err)
		}
	}
}

func TestScore(t *testing.T) {
	got := Score("aaaa1111")
	want := model.StrengthScore{Score: 42, Label: "Medium", Color: "#ffa502"}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
