package filter

import "strings"

// TriState is a yes/no/either selector.
type TriState int

const (
	TriStateEither TriState = iota
	TriStateYes
	TriStateNo
)

// ParseTriState reads a form value. Unknown values select either.
func ParseTriState(raw string) TriState {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "si", "sí", "yes", "true", "1":
		return TriStateYes
	case "no", "false", "0":
		return TriStateNo
	default:
		return TriStateEither
	}
}

func (s TriState) String() string {
	switch s {
	case TriStateYes:
		return "si"
	case TriStateNo:
		return "no"
	default:
		return ""
	}
}
