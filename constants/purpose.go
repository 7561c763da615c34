package constants

import (
	"strings"
)

type Purpose string

const (
	Maintenance Purpose = "Maintenance"
	Water       Purpose = "Water"
	Electricity Purpose = "Electricity"
	Parking     Purpose = "Parking"
	Security    Purpose = "Security"
	Garbage     Purpose = "Garbage"
)

// PurposeVocabulary is ordered: the parser picks the FIRST term found in the
// receipt text by vocabulary order, not by order of appearance in the text.
var PurposeVocabulary = []Purpose{
	Maintenance,
	Water,
	Electricity,
	Parking,
	Security,
	Garbage,
}

func PurposesAsStringSlice() []string {
	result := make([]string, len(PurposeVocabulary))
	for i, p := range PurposeVocabulary {
		result[i] = string(p)
	}
	return result
}

// CanonicalizePurpose maps free-form input onto the fixed vocabulary.
func CanonicalizePurpose(input string) (Purpose, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, p := range PurposeVocabulary {
		if normalized == strings.ToLower(string(p)) {
			return p, true
		}
	}
	return "", false
}
