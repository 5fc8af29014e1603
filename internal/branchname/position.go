package branchname

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Position is a stack ordinal stored as an integer scaled by 100.
// The zero value means the branch is unpositioned.
type Position struct {
	x100  uint32
	valid bool
}

// NewPosition returns a set position from a value already scaled by 100.
func NewPosition(x100 uint32) Position {
	return Position{x100: x100, valid: true}
}

// IsSet reports whether the position is present.
func (p Position) IsSet() bool {
	return p.valid
}

// X100 returns the scaled value. It is 0 for an unset position.
func (p Position) X100() uint32 {
	return p.x100
}

// Less orders positions ascending with unset positions first.
func (p Position) Less(o Position) bool {
	if !p.valid {
		return o.valid
	}
	if !o.valid {
		return false
	}
	return p.x100 < o.x100
}

// Add returns the position moved by delta (scaled by 100). An unset position
// starts from zero.
func (p Position) Add(delta uint32) Position {
	return NewPosition(p.x100 + delta)
}

// String formats the position with exactly one fractional digit. The second
// decimal digit is truncated, never rounded.
func (p Position) String() string {
	if !p.valid {
		return ""
	}
	return fmt.Sprintf("%d.%d", p.x100/100, (p.x100%100)/10)
}

// ParsePosition parses a decimal ordinal such as "1.5" into a Position equal
// to floor(value*100). Plain decimal input is handled on its digits so that
// values like "1.15" do not lose a unit to binary floating point.
func ParsePosition(s string) (Position, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return Position{}, false
	}

	if x100, ok := parseDecimalX100(s); ok {
		return NewPosition(x100), true
	}

	scaled := math.Floor(f * 100)
	if scaled > math.MaxUint32 {
		return Position{}, false
	}
	return NewPosition(uint32(scaled)), true
}

// PositionFromFloat truncates f to a position. It goes through the shortest
// decimal form of f so 1.15 gives 115, not 114.
func PositionFromFloat(f float64) (Position, bool) {
	return ParsePosition(strconv.FormatFloat(f, 'f', -1, 64))
}

// ParsePart parses a user supplied part such as "2.5". Unlike ParsePosition
// it rejects values a branch name cannot hold, i.e. a second decimal digit.
func ParsePart(s string) (Position, error) {
	pos, ok := ParsePosition(s)
	if !ok {
		return Position{}, fmt.Errorf("invalid part %q", s)
	}
	if pos.x100%10 != 0 {
		return Position{}, fmt.Errorf("invalid part %q: only one decimal digit is allowed", s)
	}
	return pos, nil
}

// parseDecimalX100 handles [+]digits[.digits] without going through floats.
func parseDecimalX100(s string) (uint32, bool) {
	s = strings.TrimPrefix(s, "+")
	intPart, fracPart, _ := strings.Cut(s, ".")
	if !allDigits(intPart) || !allDigits(fracPart) || intPart+fracPart == "" {
		return 0, false
	}

	var whole uint64
	if intPart != "" {
		v, err := strconv.ParseUint(intPart, 10, 64)
		if err != nil {
			return 0, false
		}
		whole = v
	}

	frac := fracPart + "00"
	cents, err := strconv.ParseUint(frac[:2], 10, 64)
	if err != nil {
		return 0, false
	}

	total := whole*100 + cents
	if whole > math.MaxUint32 || total > math.MaxUint32 {
		return 0, false
	}
	return uint32(total), true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
