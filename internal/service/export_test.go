package service

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vaultpass/passgen-go/internal/model"
)

func sampleEntries() []model.HistoryEntry {
	return []model.HistoryEntry{
		{
			ID:        "1773480413589",
			Password:  `Kx9!"mP<q`,
			Mode:      model.ModePassword,
			Strength:  85,
			CreatedAt: time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC),
			Notes:     "bank",
		},
		{
			ID:        "1773480400000",
			Password:  "able-acid-arch",
			Mode:      model.ModePassphrase,
			Strength:  45,
			CreatedAt: time.Date(2026, 3, 14, 9, 26, 40, 0, time.UTC),
		},
	}
}

func TestExportCSV_Empty(t *testing.T) {
	got, err := Export(nil, model.FormatCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Password,Type,Strength,Date,Notes" {
		t.Errorf("expected header only, got %q", got)
	}
}

func TestExportCSV(t *testing.T) {
	got, err := Export(sampleEntries(), model.FormatCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"Password,Type,Strength,Date,Notes",
		`"Kx9!""mP<q",password,Very Strong,2026-03-14T09:26:53.589Z,"bank"`,
		`"able-acid-arch",passphrase,Medium,2026-03-14T09:26:40.000Z,""`,
	}, "\n")
	if got != want {
		t.Errorf("unexpected csv:\n got  %q\n want %q", got, want)
	}
}

func TestExportJSON(t *testing.T) {
	entries := sampleEntries()

	got, err := Export(entries, model.FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "[\n  {\n    \"id\": \"1773480413589\"") {
		t.Errorf("expected two-space pretty printing, got %q", got)
	}
	if !strings.Contains(got, `"password": "Kx9!\"mP<q"`) {
		t.Errorf("expected unescaped angle brackets, got %q", got)
	}
	if !strings.Contains(got, `"date": "2026-03-14T09:26:53.589Z"`) {
		t.Errorf("expected ISO date, got %q", got)
	}
	if !strings.Contains(got, `"date": "2026-03-14T09:26:40.000Z"`) {
		t.Errorf("expected whole-second date with .000 millis, got %q", got)
	}

	var decoded []model.HistoryEntry
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if !reflect.DeepEqual(decoded, entries) {
		t.Errorf("decoded export differs:\n got  %+v\n want %+v", decoded, entries)
	}
}

func TestExportJSON_Empty(t *testing.T) {
	got, err := Export(nil, model.FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "[]" {
		t.Errorf("expected [], got %q", got)
	}
}

func TestExportTXT(t *testing.T) {
	got := exportTXT(sampleEntries(), time.UTC)

	want := "Password History Export\n" +
		strings.Repeat("=", 50) + "\n\n" +
		"1. Password: Kx9!\"mP<q\n" +
		"   Type: password\n" +
		"   Strength: Very Strong\n" +
		"   Date: 3/14/2026, 9:26:53 AM\n" +
		"   Notes: bank\n" +
		"\n" +
		"2. Password: able-acid-arch\n" +
		"   Type: passphrase\n" +
		"   Strength: Medium\n" +
		"   Date: 3/14/2026, 9:26:40 AM\n" +
		"\n"
	if got != want {
		t.Errorf("unexpected txt:\n got  %q\n want %q", got, want)
	}
}

func TestExportTXT_Empty(t *testing.T) {
	got, err := Export(nil, model.FormatTXT)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Password History Export\n"+strings.Repeat("=", 50)+"\n\n" {
		t.Errorf("unexpected txt: %q", got)
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	if _, err := Export(nil, model.ExportFormat("xml")); !errors.Is(err, model.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}
