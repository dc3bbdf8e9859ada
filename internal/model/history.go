package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Mode identifies which generator produced a password.
type Mode string

const (
	ModePassword      Mode = "password"
	ModePassphrase    Mode = "passphrase"
	ModePronounceable Mode = "pronounceable"
)

var ErrUnknownMode = errors.New("unknown generation mode")

// ParseMode validates s. An empty string selects ModePassword.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModePassword:
		return ModePassword, nil
	case ModePassphrase, ModePronounceable:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// HistoryEntry is one generated password as stored and exported.
// JSON field names match the persisted history format.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Password  string    `json:"password"`
	Mode      Mode      `json:"type"`
	Strength  int       `json:"strength"`
	CreatedAt time.Time `json:"date"`
	Notes     string    `json:"notes"`
}

// DateLayout is the entry date format: UTC with exactly three fractional digits.
const DateLayout = "2006-01-02T15:04:05.000Z"

// MarshalJSON writes CreatedAt in DateLayout. time.Time alone would trim
// trailing zero milliseconds. Decoding needs no counterpart since DateLayout
// is valid RFC 3339.
func (e HistoryEntry) MarshalJSON() ([]byte, error) {
	wire := struct {
		ID       string `json:"id"`
		Password string `json:"password"`
		Mode     Mode   `json:"type"`
		Strength int    `json:"strength"`
		Date     string `json:"date"`
		Notes    string `json:"notes"`
	}{e.ID, e.Password, e.Mode, e.Strength, e.CreatedAt.UTC().Format(DateLayout), e.Notes}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(wire); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// NotesRequest updates the notes of a history entry.
type NotesRequest struct {
	Notes string `json:"notes"`
}

// ExportFormat selects the textual rendering of an export.
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatCSV  ExportFormat = "csv"
	FormatTXT  ExportFormat = "txt"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseExportFormat validates s. An empty string selects FormatJSON.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch ExportFormat(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatCSV, FormatTXT:
		return ExportFormat(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Filename is the suggested download name for the format.
func (f ExportFormat) Filename() string {
	return "password-history." + string(f)
}

// MIMEType is the content type of the format.
func (f ExportFormat) MIMEType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatTXT:
		return "text/plain"
	default:
		return "application/json"
	}
}
