package domain

// Priority is the product-management priority of a feature.
type Priority string

// Priority levels
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether p is one of the enumerated priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// TShirtSize is the ordinal engineering-complexity estimate (XS..XL).
type TShirtSize string

// T-shirt sizes
const (
	SizeXS TShirtSize = "XS"
	SizeS  TShirtSize = "S"
	SizeM  TShirtSize = "M"
	SizeL  TShirtSize = "L"
	SizeXL TShirtSize = "XL"
)

// Valid reports whether s is one of the enumerated t-shirt sizes.
func (s TShirtSize) Valid() bool {
	switch s {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL:
		return true
	}
	return false
}
