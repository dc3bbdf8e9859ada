package model

// GenerateRequest represents a password generation request for any mode.
// Pointer fields allow distinguishing between missing (nil -> default) and explicit values.
type GenerateRequest struct {
	Mode   string `json:"mode"`
	Policy string `json:"policy,omitempty"`

	// Random password and pronounceable options.
	Length           int    `json:"length"`
	Uppercase        *bool  `json:"uppercase"`
	Lowercase        *bool  `json:"lowercase"`
	Numbers          *bool  `json:"numbers"`
	Symbols          *bool  `json:"symbols"`
	ExcludeAmbiguous bool   `json:"exclude_ambiguous"`
	CustomChars      string `json:"custom_chars"`

	// Passphrase options.
	WordCount    int     `json:"word_count"`
	Separator    *string `json:"separator"`
	Capitalize   bool    `json:"capitalize"`
	AppendNumber bool    `json:"append_number"`

	// Count is only read by batch generation.
	Count int `json:"count,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string        `json:"password"`
	Mode     Mode          `json:"mode"`
	Strength StrengthScore `json:"strength"`
	Entry    *HistoryEntry `json:"entry,omitempty"`
}

// BatchResponse lists passwords generated without being recorded in history.
type BatchResponse struct {
	Mode      Mode     `json:"mode"`
	Passwords []string `json:"passwords"`
}

// StrengthRequest asks for the score of an arbitrary password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthScore is a numeric score with its bucket label and display color.
type StrengthScore struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Color string `json:"color"`
}
