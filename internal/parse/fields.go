package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/societydesk/receipt-verifier/constants"
)

var (
	reAmount = regexp.MustCompile(`(?i)(?:₹|Rs\.?|INR)\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`)
	reBlock  = regexp.MustCompile(`(?i)(?:Block|Blk)[\s:.#-]*([0-9]+)`)
	reFlat   = regexp.MustCompile(`(?i)(?:Flat|Unit|Apt)[\s:.#-]*([0-9]+)`)
	reDate   = regexp.MustCompile(`([0-9]{1,2})[/.-]([0-9]{1,2})[/.-]([0-9]{2,4})`)
)

// Fields holds whatever the heuristics could pull out of the receipt text.
// Every field is independently optional; a missed pattern just leaves its
// field unset, never an error.
type Fields struct {
	Amount      *float64 `json:"amount,omitempty"`
	BlockNumber string   `json:"block_number,omitempty"`
	FlatNumber  string   `json:"flat_number,omitempty"`
	PaymentDate string   `json:"payment_date,omitempty"` // YYYY-MM-DD
	Purpose     string   `json:"purpose,omitempty"`
}

// ParseFields applies regex/keyword heuristics to raw OCR text.
func ParseFields(rawText string) Fields {
	return Fields{
		Amount:      extractAmount(rawText),
		BlockNumber: extractBlockNumber(rawText),
		FlatNumber:  extractFlatNumber(rawText),
		PaymentDate: extractPaymentDate(rawText),
		Purpose:     extractPurpose(rawText),
	}
}

// extractAmount takes the FIRST currency-prefixed number; no attempt is made
// to disambiguate multiple currency mentions.
func extractAmount(text string) *float64 {
	m := reAmount.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	cleaned := strings.ReplaceAll(m[1], ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &amount
}

func extractBlockNumber(text string) string {
	m := reBlock.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

func extractFlatNumber(text string) string {
	m := reFlat.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// extractPaymentDate reformats the first D/M/Y-ish match to YYYY-MM-DD.
// Two-digit years are expanded by prefixing "20". If reformatting fails the
// raw matched substring is returned as-is.
func extractPaymentDate(text string) string {
	m := reDate.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	day, errD := strconv.Atoi(m[1])
	month, errM := strconv.Atoi(m[2])
	year := m[3]
	if len(year) == 2 {
		year = "20" + year
	}
	if errD != nil || errM != nil || len(year) != 4 {
		return m[0]
	}
	return fmt.Sprintf("%s-%02d-%02d", year, month, day)
}

// extractPurpose scans the fixed vocabulary in order; the first term found
// anywhere in the text wins, so vocabulary order is the tie-break rather than
// order of appearance.
func extractPurpose(text string) string {
	lower := strings.ToLower(text)
	for _, p := range constants.PurposeVocabulary {
		if strings.Contains(lower, strings.ToLower(string(p))) {
			return string(p)
		}
	}
	return ""
}
