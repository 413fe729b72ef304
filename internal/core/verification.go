package core

import (
	"encoding/json"
	"strings"
)

// Verification is the structured verdict embedded in the model's
// free-text verification response.
type Verification struct {
	IsVerified bool                 `json:"isVerified"`
	Pattern    *VerificationPattern `json:"pattern,omitempty"`
}

// VerificationPattern mirrors the pattern object the model is asked to emit.
type VerificationPattern struct {
	Type                string `json:"type"`
	HookStyle           string `json:"hookStyle"`
	Structure           string `json:"structure"`
	Pacing              string `json:"pacing"`
	PersuasionTechnique string `json:"persuasionTechnique"`
}

// ParseVerification extracts the first {...} span from the response text and
// decodes it. Absent or malformed JSON is an unverified result, never an
// error: the whole verdict is the remote model's judgment.
func ParseVerification(text string) Verification {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return Verification{}
	}

	var v Verification
	if err := json.Unmarshal([]byte(text[start:end+1]), &v); err != nil {
		return Verification{}
	}
	return v
}
