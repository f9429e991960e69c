package domain

import "fmt"

type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

func (e Energy) Valid() bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}

// Energies lists the selectable levels in display order.
func Energies() []Energy {
	return []Energy{EnergyLow, EnergyMedium, EnergyHigh}
}

const (
	MinMinutes = 0
	MaxMinutes = 120

	// SubmitMinMinutes is the smallest window worth asking about.
	// Below it the request button stays disabled; no call is made.
	SubmitMinMinutes = 10
)

// FreeTime is one suggestion request's parameters. It is transient and
// rebuilt on every visit to the workflow screen.
type FreeTime struct {
	Minutes int
	Energy  Energy
}

func (f FreeTime) Validate() error {
	if f.Minutes < MinMinutes || f.Minutes > MaxMinutes {
		return fmt.Errorf("minutes %d out of range [%d,%d]", f.Minutes, MinMinutes, MaxMinutes)
	}
	if !f.Energy.Valid() {
		return fmt.Errorf("unknown energy level %q", f.Energy)
	}
	return nil
}

func (f FreeTime) Submittable() bool {
	return f.Minutes >= SubmitMinMinutes
}

const (
	shortWindowMessage = "Short window - we'll find something quick"
	decentTimeMessage  = "Decent time - room for something good"
	niceChunkMessage   = "Nice chunk - let's make it count"
)

// TimeWindowMessage maps a minute count to one of three fixed urgency
// messages. The boundary values 30 and 60 belong to the lower band.
func TimeWindowMessage(minutes int) string {
	switch {
	case minutes <= 30:
		return shortWindowMessage
	case minutes <= 60:
		return decentTimeMessage
	default:
		return niceChunkMessage
	}
}
