package table

import (
	"fmt"
	"strings"
)

// Tone is the colour category of a cell or badge.
type Tone int

//go:generate go tool stringer -type=Tone -trimprefix=Tone -output=tone_string.go

const (
	ToneDefault Tone = iota
	TonePositive
	ToneCaution
	ToneNegative
	ToneNeutral
)

// MarshalText encodes the tone as its lower-case name.
func (t Tone) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(t.String())), nil
}

// UnmarshalText accepts the lower-case names produced by MarshalText.
func (t *Tone) UnmarshalText(text []byte) error {
	for candidate := ToneDefault; candidate <= ToneNeutral; candidate++ {
		if strings.EqualFold(candidate.String(), string(text)) {
			*t = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown tone %q", string(text))
}
