package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	csvHeader     = "Password,Type,Strength,Date,Notes"
	txtDateLayout = "1/2/2006, 3:04:05 PM"
	txtTitle      = "Password History Export"
	txtRuleWidth  = 50
)

// Export renders entries in the given format.
func Export(entries []model.HistoryEntry, format model.ExportFormat) (string, error) {
	switch format {
	case model.FormatJSON:
		return exportJSON(entries)
	case model.FormatCSV:
		return exportCSV(entries), nil
	case model.FormatTXT:
		return exportTXT(entries, time.Local), nil
	}
	return "", fmt.Errorf("%w: %q", model.ErrUnknownFormat, format)
}

func exportJSON(entries []model.HistoryEntry) (string, error) {
	if entries == nil {
		entries = []model.HistoryEntry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func exportCSV(entries []model.HistoryEntry) string {
	rows := make([]string, 0, len(entries)+1)
	rows = append(rows, csvHeader)

	for _, e := range entries {
		rows = append(rows, strings.Join([]string{
			quoteCSV(e.Password),
			string(e.Mode),
			crypto.StrengthLabel(e.Strength),
			e.CreatedAt.UTC().Format(model.DateLayout),
			quoteCSV(e.Notes),
		}, ","))
	}

	return strings.Join(rows, "\n")
}

// quoteCSV always quotes and doubles embedded quotes.
func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func exportTXT(entries []model.HistoryEntry, loc *time.Location) string {
	var b strings.Builder
	b.WriteString(txtTitle + "\n")
	b.WriteString(strings.Repeat("=", txtRuleWidth) + "\n\n")

	for i, e := range entries {
		b.WriteString(strconv.Itoa(i+1) + ". Password: " + e.Password + "\n")
		b.WriteString("   Type: " + string(e.Mode) + "\n")
		b.WriteString("   Strength: " + crypto.StrengthLabel(e.Strength) + "\n")
		b.WriteString("   Date: " + e.CreatedAt.In(loc).Format(txtDateLayout) + "\n")
		if e.Notes != "" {
			b.WriteString("   Notes: " + e.Notes + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
