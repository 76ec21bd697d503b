package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeeDetailRoundTrip(t *testing.T) {
	cases := []struct {
		feeType FeeType
		note    string
	}{
		{FeeTypePerUse, ""},
		{FeeTypePerHour, "first hour free"},
		{FeeTypePerDay, "weekends only"},
		{FeeTypePerQuantity, "per towel"},
		{FeeTypeOther, "ask at reception: desk B"},
		{FeeTypePerUse, "note: with: many: colons"},
	}
	for _, tc := range cases {
		encoded := EncodeFeeDetail(tc.feeType, tc.note)
		gotType, gotNote := DecodeFeeDetail(encoded)
		assert.Equal(t, tc.feeType, gotType, "encoded %q", encoded)
		assert.Equal(t, tc.note, gotNote, "encoded %q", encoded)
	}
}

func TestDecodeFeeDetail_UnknownPrefix(t *testing.T) {
	// Legacy or hand-edited values fall back to per-use.
	feeType, note := DecodeFeeDetail("weekly:every monday")
	assert.Equal(t, FeeTypePerUse, feeType)
	assert.Equal(t, "every monday", note)

	feeType, note = DecodeFeeDetail("just a note without a type")
	assert.Equal(t, FeeTypePerUse, feeType)
	assert.Empty(t, note)

	feeType, note = DecodeFeeDetail("")
	assert.Equal(t, FeeTypePerUse, feeType)
	assert.Empty(t, note)
}

func TestConvertBetweenBooleanVariants(t *testing.T) {
	f := Field{Key: "pool", Label: "Pool", Type: FieldTypeBoolean, On: true}

	f.ConvertToBooleanWithOptions()
	assert.Equal(t, FieldTypeBooleanWithOptions, f.Type)
	assert.True(t, f.On, "toggle value survives the conversion")
	assert.Empty(t, f.FeeStatus)

	f.FeeStatus = FeeStatusCharged
	f.FeeNote = "10 EUR"
	f.AdditionalNote = EncodeFeeDetail(FeeTypePerUse, "towels included")

	// Reverting discards the fee detail.
	f.ConvertToBoolean()
	assert.Equal(t, FieldTypeBoolean, f.Type)
	assert.True(t, f.On)
	assert.Empty(t, f.FeeStatus)
	assert.Empty(t, f.FeeNote)
	assert.Empty(t, f.AdditionalNote)
}

func TestConvertNoOpOnWrongType(t *testing.T) {
	text := Field{Key: "f", Label: "F", Type: FieldTypeText, Text: "hello"}
	text.ConvertToBooleanWithOptions()
	assert.Equal(t, FieldTypeText, text.Type)

	withText := Field{Key: "g", Label: "G", Type: FieldTypeBooleanWithText, AdditionalNote: "note"}
	withText.ConvertToBoolean()
	assert.Equal(t, FieldTypeBooleanWithText, withText.Type)
	assert.Equal(t, "note", withText.AdditionalNote)
}

func TestFeeStatusValidity(t *testing.T) {
	assert.True(t, FeeStatus("").IsValid(), "empty means not stated")
	assert.True(t, FeeStatusConditional.IsValid())
	assert.False(t, FeeStatus("sometimes").IsValid())
}
