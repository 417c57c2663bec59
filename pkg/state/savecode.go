package state

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// shiftKey is the per-character offset applied over the base64 text.
// It is light obfuscation against casual edits, not encryption.
const shiftKey = 5

// EncodeSaveCode serializes a snapshot into a shareable text code.
func EncodeSaveCode(save Save) (string, error) {
	raw, err := json.Marshal(save)
	if err != nil {
		return "", fmt.Errorf("marshal save: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(raw)
	shifted := make([]rune, 0, len(encoded))
	for _, r := range encoded {
		shifted = append(shifted, r+shiftKey)
	}
	return string(shifted), nil
}

// DecodeSaveCode parses a save code back into a snapshot. Tampered or
// truncated codes fail with an error rather than a partial save.
func DecodeSaveCode(code string) (Save, error) {
	if code == "" {
		return Save{}, fmt.Errorf("empty save code")
	}
	unshifted := make([]rune, 0, len(code))
	for _, r := range code {
		if r < shiftKey {
			return Save{}, fmt.Errorf("invalid save code")
		}
		unshifted = append(unshifted, r-shiftKey)
	}
	raw, err := base64.StdEncoding.DecodeString(string(unshifted))
	if err != nil {
		return Save{}, fmt.Errorf("invalid save code: %w", err)
	}
	var save Save
	if err := json.Unmarshal(raw, &save); err != nil {
		return Save{}, fmt.Errorf("invalid save code: %w", err)
	}
	return save, nil
}
