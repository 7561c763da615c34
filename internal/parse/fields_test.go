package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldsCleanReceipt(t *testing.T) {
	got := ParseFields("Rs. 500 Block 4 Flat 12 Maintenance paid on 05/01/2024")

	require.NotNil(t, got.Amount)
	assert.InDelta(t, 500.0, *got.Amount, 0.001)
	assert.Equal(t, "4", got.BlockNumber)
	assert.Equal(t, "12", got.FlatNumber)
	assert.Equal(t, "2024-01-05", got.PaymentDate)
	assert.Equal(t, "Maintenance", got.Purpose)
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
		none bool
	}{
		{name: "rs with period", text: "Rs. 500 received", want: 500},
		{name: "rs without period", text: "Rs 500 received", want: 500},
		{name: "rupee sign", text: "paid ₹1,250.50 towards dues", want: 1250.50},
		{name: "inr prefix", text: "INR 300", want: 300},
		{name: "lowercase prefix", text: "rs 99.90", want: 99.90},
		{name: "comma grouping", text: "Rs. 1,00,000", want: 100000},
		{name: "first match wins", text: "Rs 100 then Rs 200", want: 100},
		{name: "no currency prefix", text: "amount 500", none: true},
		{name: "empty text", text: "", none: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFields(tt.text)
			if tt.none {
				assert.Nil(t, got.Amount)
				return
			}
			require.NotNil(t, got.Amount)
			assert.InDelta(t, tt.want, *got.Amount, 0.001)
		})
	}
}

func TestExtractBlockAndFlat(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantBlock string
		wantFlat  string
	}{
		{name: "block and flat", text: "Block 4 Flat 12", wantBlock: "4", wantFlat: "12"},
		{name: "blk abbreviation", text: "Blk-7", wantBlock: "7"},
		{name: "unit keyword", text: "Unit: 101", wantFlat: "101"},
		{name: "apt keyword", text: "apt 22", wantFlat: "22"},
		{name: "colon separator", text: "Block: 3", wantBlock: "3"},
		{name: "digits captured only", text: "Flat 12B", wantFlat: "12"},
		{name: "no match", text: "somewhere else"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFields(tt.text)
			assert.Equal(t, tt.wantBlock, got.BlockNumber)
			assert.Equal(t, tt.wantFlat, got.FlatNumber)
		})
	}
}

func TestExtractPaymentDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "slash separated", text: "paid on 05/01/2024", want: "2024-01-05"},
		{name: "dash separated", text: "paid on 5-1-2024", want: "2024-01-05"},
		{name: "dot separated", text: "paid on 05.01.2024", want: "2024-01-05"},
		{name: "two digit year expanded", text: "on 5/1/24", want: "2024-01-05"},
		{name: "zero padding applied", text: "9/3/2023", want: "2023-03-09"},
		{name: "no date", text: "no date here", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFields(tt.text)
			assert.Equal(t, tt.want, got.PaymentDate)
		})
	}
}

func TestExtractPurpose(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "maintenance", text: "monthly maintenance dues", want: "Maintenance"},
		{name: "case insensitive", text: "WATER bill", want: "Water"},
		{name: "capitalized on return", text: "parking charges", want: "Parking"},
		// The vocabulary order is the tie-break: maintenance outranks water
		// even when water appears first in the text.
		{name: "vocabulary order wins", text: "water charges and maintenance dues", want: "Maintenance"},
		{name: "garbage", text: "garbage collection fee", want: "Garbage"},
		{name: "no vocabulary term", text: "donation for festival", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFields(tt.text)
			assert.Equal(t, tt.want, got.Purpose)
		})
	}
}

func TestParseFieldsUnrecognizedText(t *testing.T) {
	got := ParseFields("lorem ipsum dolor sit amet")

	assert.Nil(t, got.Amount)
	assert.Empty(t, got.BlockNumber)
	assert.Empty(t, got.FlatNumber)
	assert.Empty(t, got.PaymentDate)
	assert.Empty(t, got.Purpose)
}
