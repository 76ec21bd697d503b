package domain

import "strings"

// FeeStatus is the charge state carried by boolean-with-options fields.
type FeeStatus string

// Available fee statuses. The empty string means "not stated".
const (
	// FeeStatusFree means the service is included at no charge.
	FeeStatusFree FeeStatus = "free"

	// FeeStatusCharged means the service costs extra; FeeNote holds the
	// amount and AdditionalNote the encoded fee type.
	FeeStatusCharged FeeStatus = "charged"

	// FeeStatusConditional is reserved for charges that depend on
	// circumstances. Stored data may carry it; no editing surface sets it.
	FeeStatusConditional FeeStatus = "conditional"
)

// IsValid returns true for a known status or the empty "not stated" value.
func (s FeeStatus) IsValid() bool {
	switch s {
	case "", FeeStatusFree, FeeStatusCharged, FeeStatusConditional:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s FeeStatus) String() string {
	return string(s)
}

// FeeType describes how a charged service is billed.
type FeeType string

// Available fee types.
const (
	FeeTypePerUse      FeeType = "per_use"
	FeeTypePerHour     FeeType = "per_hour"
	FeeTypePerDay      FeeType = "per_day"
	FeeTypePerQuantity FeeType = "per_quantity"
	FeeTypeOther       FeeType = "other"
)

// IsValid returns true if the fee type is recognised.
func (t FeeType) IsValid() bool {
	switch t {
	case FeeTypePerUse, FeeTypePerHour, FeeTypePerDay, FeeTypePerQuantity, FeeTypeOther:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t FeeType) String() string {
	return string(t)
}

// Description returns a human-readable label for the fee type.
func (t FeeType) Description() string {
	switch t {
	case FeeTypePerUse:
		return "Per use"
	case FeeTypePerHour:
		return "Per hour"
	case FeeTypePerDay:
		return "Per day"
	case FeeTypePerQuantity:
		return "Per quantity"
	case FeeTypeOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// AllFeeTypes returns every fee type in display order.
func AllFeeTypes() []FeeType {
	return []FeeType{FeeTypePerUse, FeeTypePerHour, FeeTypePerDay, FeeTypePerQuantity, FeeTypeOther}
}

// EncodeFeeDetail packs a fee type and a secondary note into the single
// AdditionalNote string of a boolean-with-options field as "<type>:<note>".
// An empty note encodes as the bare type. DecodeFeeDetail inverts this
// exactly, including notes that themselves contain colons.
func EncodeFeeDetail(t FeeType, note string) string {
	if note == "" {
		return t.String()
	}
	return t.String() + ":" + note
}

// DecodeFeeDetail splits an encoded fee detail on the first colon. An
// unrecognised or missing type prefix decodes as per_use; the remainder of
// the string after the first colon is the note, preserved verbatim.
func DecodeFeeDetail(encoded string) (FeeType, string) {
	head, note, _ := strings.Cut(encoded, ":")
	t := FeeType(head)
	if !t.IsValid() {
		t = FeeTypePerUse
	}
	return t, note
}

// ConvertToBooleanWithOptions turns a plain boolean field into a
// boolean-with-options field with empty fee detail. The toggle value is
// kept. No-op for fields that are not plain booleans.
func (f *Field) ConvertToBooleanWithOptions() {
	if f.Type != FieldTypeBoolean {
		return
	}
	f.Type = FieldTypeBooleanWithOptions
	f.FeeStatus = ""
	f.FeeNote = ""
	f.AdditionalNote = ""
}

// ConvertToBoolean turns a boolean-with-options field back into a plain
// boolean, discarding all fee detail. The loss is deliberate: reverting a
// toggle drops its charge information.
func (f *Field) ConvertToBoolean() {
	if f.Type != FieldTypeBooleanWithOptions {
		return
	}
	f.Type = FieldTypeBoolean
	f.FeeStatus = ""
	f.FeeNote = ""
	f.AdditionalNote = ""
}
