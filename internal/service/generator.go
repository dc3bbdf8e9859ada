package service

import (
	"context"
	"fmt"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	DefaultLength              = 16
	DefaultWordCount           = 4
	DefaultPronounceableLength = 12
	DefaultSeparator           = "-"

	MaxLength    = 128
	MaxWordCount = 20
	MaxBatch     = 50
)

var (
	ErrLengthTooLong    = fmt.Errorf("%w: length must be at most %d", crypto.ErrConfiguration, MaxLength)
	ErrTooManyWords     = fmt.Errorf("%w: word count must be at most %d", crypto.ErrConfiguration, MaxWordCount)
	ErrInvalidBatchSize = fmt.Errorf("%w: batch count must be between 1 and %d", crypto.ErrConfiguration, MaxBatch)
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen     *crypto.Generator
	history *HistoryService
}

// NewGeneratorService creates a new GeneratorService. Generated passwords are
// recorded in history.
func NewGeneratorService(gen *crypto.Generator, history *HistoryService) *GeneratorService {
	return &GeneratorService{gen: gen, history: history}
}

// Generate produces a password in the requested mode, scores it and appends it to history.
// Nothing is recorded when generation fails.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	mode, err := model.ParseMode(req.Mode)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := s.generate(mode, req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := model.GenerateResponse{
		Password: password,
		Mode:     mode,
		Strength: Score(password),
	}
	if s.history != nil {
		entry := s.history.Append(ctx, password, mode)
		resp.Entry = &entry
	}
	return resp, nil
}

// Batch produces req.Count passwords in the requested mode without recording them.
func (s *GeneratorService) Batch(req model.GenerateRequest) (model.BatchResponse, error) {
	mode, err := model.ParseMode(req.Mode)
	if err != nil {
		return model.BatchResponse{}, err
	}
	if req.Count < 1 || req.Count > MaxBatch {
		return model.BatchResponse{}, ErrInvalidBatchSize
	}

	passwords := make([]string, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		password, err := s.generate(mode, req)
		if err != nil {
			return model.BatchResponse{}, err
		}
		passwords = append(passwords, password)
	}

	return model.BatchResponse{Mode: mode, Passwords: passwords}, nil
}

// Score rates password and attaches its bucket label and color.
func Score(password string) model.StrengthScore {
	score := crypto.Strength(password)
	return model.StrengthScore{
		Score: score,
		Label: crypto.StrengthLabel(score),
		Color: crypto.StrengthColor(score),
	}
}

func (s *GeneratorService) generate(mode model.Mode, req model.GenerateRequest) (string, error) {
	switch mode {
	case model.ModePassphrase:
		opts, err := PassphraseOptions(req)
		if err != nil {
			return "", err
		}
		return s.gen.Passphrase(opts)
	case model.ModePronounceable:
		opts, err := PronounceableOptions(req)
		if err != nil {
			return "", err
		}
		return s.gen.Pronounceable(opts)
	default:
		opts, err := PasswordOptions(req)
		if err != nil {
			return "", err
		}
		return s.gen.Password(opts)
	}
}

// PasswordOptions converts a request into random password options. A policy
// template, when named, overrides length and character classes.
func PasswordOptions(req model.GenerateRequest) (crypto.PasswordOptions, error) {
	opts := crypto.PasswordOptions{
		Length:           req.Length,
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Lowercase:        boolOrDefault(req.Lowercase, true),
		Numbers:          boolOrDefault(req.Numbers, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeAmbiguous: req.ExcludeAmbiguous,
		CustomChars:      req.CustomChars,
	}

	if req.Policy != "" {
		var err error
		if opts, err = crypto.ApplyPolicy(req.Policy, opts); err != nil {
			return crypto.PasswordOptions{}, err
		}
	}

	if opts.Length == 0 {
		opts.Length = DefaultLength
	}
	if opts.Length > MaxLength {
		return crypto.PasswordOptions{}, ErrLengthTooLong
	}
	return opts, nil
}

// PassphraseOptions converts a request into passphrase options.
func PassphraseOptions(req model.GenerateRequest) (crypto.PassphraseOptions, error) {
	opts := crypto.PassphraseOptions{
		WordCount:    req.WordCount,
		Separator:    stringOrDefault(req.Separator, DefaultSeparator),
		Capitalize:   req.Capitalize,
		AppendNumber: req.AppendNumber,
	}

	if opts.WordCount == 0 {
		opts.WordCount = DefaultWordCount
	}
	if opts.WordCount > MaxWordCount {
		return crypto.PassphraseOptions{}, ErrTooManyWords
	}
	return opts, nil
}

// PronounceableOptions converts a request into pronounceable password options.
func PronounceableOptions(req model.GenerateRequest) (crypto.PronounceableOptions, error) {
	opts := crypto.PronounceableOptions{
		Length:  req.Length,
		Numbers: boolOrDefault(req.Numbers, false),
		Symbols: boolOrDefault(req.Symbols, false),
	}

	if opts.Length == 0 {
		opts.Length = DefaultPronounceableLength
	}
	if opts.Length > MaxLength {
		return crypto.PronounceableOptions{}, ErrLengthTooLong
	}
	return opts, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func stringOrDefault(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
