package location

import (
	"errors"
	"fmt"
)

// State is an Australian state or territory. The zero value means the state
// could not be determined; callers treat it as "no signal", never as a match.
type State int

const (
	StateUnspecified State = iota
	NewSouthWales
	Victoria
	Queensland
	SouthAustralia
	WesternAustralia
	Tasmania
	NorthernTerritory
	AustralianCapitalTerritory
)

var ErrUnknownState = errors.New("unknown state")

var stateNames = map[State]string{
	NewSouthWales:              "NSW",
	Victoria:                   "VIC",
	Queensland:                 "QLD",
	SouthAustralia:             "SA",
	WesternAustralia:           "WA",
	Tasmania:                   "TAS",
	NorthernTerritory:          "NT",
	AustralianCapitalTerritory: "ACT",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return ""
}

func ParseState(name string) (State, error) {
	for st, n := range stateNames {
		if n == name {
			return st, nil
		}
	}
	return StateUnspecified, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// States lists every known state in declaration order.
func States() []State {
	return []State{
		NewSouthWales,
		Victoria,
		Queensland,
		SouthAustralia,
		WesternAustralia,
		Tasmania,
		NorthernTerritory,
		AustralianCapitalTerritory,
	}
}
