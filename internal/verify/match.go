package verify

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/societydesk/receipt-verifier/internal/parse"
)

// amountTolerance absorbs floating-point noise between the parsed and the
// manually entered amount.
const amountTolerance = 0.01

// ManualClaim is the member-submitted record being verified against. The
// pipeline only reads these four fields; it neither constructs nor validates
// claims beyond that.
type ManualClaim struct {
	Amount      string `json:"amount"`
	BlockNumber string `json:"block_number"`
	FlatNumber  string `json:"flat_number"`
	Purpose     string `json:"purpose"`
}

// UnmarshalJSON accepts the amount as either a JSON string or a JSON number,
// since submission forms send both.
func (c *ManualClaim) UnmarshalJSON(data []byte) error {
	var raw struct {
		Amount      json.Number `json:"amount"`
		BlockNumber string      `json:"block_number"`
		FlatNumber  string      `json:"flat_number"`
		Purpose     string      `json:"purpose"`
	}
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	c.Amount = raw.Amount.String()
	c.BlockNumber = raw.BlockNumber
	c.FlatNumber = raw.FlatNumber
	c.Purpose = raw.Purpose
	return nil
}

// MatchScore compares the parsed fields against the manual claim, field by
// field, and returns matched/comparable in [0,1].
//
// Exactly four pairs are considered: amount, block, flat, purpose. The
// payment date is extracted but never compared. A pair only enters the
// denominator when BOTH sides carry a value; a one-sided field is skipped,
// not counted as a mismatch. Zero comparable pairs scores 0.
func MatchScore(extracted parse.Fields, claim ManualClaim) float64 {
	var matched, comparable int

	if extracted.Amount != nil && strings.TrimSpace(claim.Amount) != "" {
		comparable++
		if manual, err := parseClaimAmount(claim.Amount); err == nil {
			if math.Abs(*extracted.Amount-manual) < amountTolerance {
				matched++
			}
		}
	}

	if extracted.BlockNumber != "" && claim.BlockNumber != "" {
		comparable++
		if extracted.BlockNumber == claim.BlockNumber {
			matched++
		}
	}

	if extracted.FlatNumber != "" && claim.FlatNumber != "" {
		comparable++
		if extracted.FlatNumber == claim.FlatNumber {
			matched++
		}
	}

	if extracted.Purpose != "" && claim.Purpose != "" {
		comparable++
		if strings.EqualFold(extracted.Purpose, claim.Purpose) {
			matched++
		}
	}

	if comparable == 0 {
		return 0
	}
	return float64(matched) / float64(comparable)
}

func parseClaimAmount(s string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return strconv.ParseFloat(cleaned, 64)
}
