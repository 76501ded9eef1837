package countdown

import (
	"fmt"
	"time"
)

const (
	msPerSecond = int64(time.Second / time.Millisecond)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Unit names a countdown field.
type Unit string

const (
	UnitDays    Unit = "days"
	UnitHours   Unit = "hours"
	UnitMinutes Unit = "minutes"
	UnitSeconds Unit = "seconds"
)

// State is the remaining time to the target at one tick.
// While Arrived is false the four fields decompose the positive delta;
// once Arrived is true they are all zero.
type State struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Arrived bool  `json:"arrived"`
}

// Arrived is the terminal state.
var Arrived = State{Arrived: true}

// Compute derives the state for now relative to target.
// The delta is taken on Unix milliseconds so targets centuries away do not
// saturate the way time.Duration does.
func Compute(target Target, now time.Time) State {
	return decompose(target.At().UnixMilli() - now.UnixMilli())
}

func decompose(deltaMs int64) State {
	if deltaMs <= 0 {
		return Arrived
	}
	return State{
		Days:    deltaMs / msPerDay,
		Hours:   (deltaMs % msPerDay) / msPerHour,
		Minutes: (deltaMs % msPerHour) / msPerMinute,
		Seconds: (deltaMs % msPerMinute) / msPerSecond,
	}
}

// Field returns the value of one unit.
func (s State) Field(u Unit) int64 {
	switch u {
	case UnitDays:
		return s.Days
	case UnitHours:
		return s.Hours
	case UnitMinutes:
		return s.Minutes
	case UnitSeconds:
		return s.Seconds
	}
	return 0
}

// Padded returns the unit as a string padded to two digits.
func (s State) Padded(u Unit) string {
	return fmt.Sprintf("%02d", s.Field(u))
}

// Pulses reports which units just rolled over and should be emphasised.
// Seconds always pulse; each larger unit pulses when every smaller unit is zero.
func (s State) Pulses() []Unit {
	if s.Arrived {
		return nil
	}
	units := []Unit{UnitSeconds}
	if s.Seconds != 0 {
		return units
	}
	units = append(units, UnitMinutes)
	if s.Minutes != 0 {
		return units
	}
	units = append(units, UnitHours)
	if s.Hours != 0 {
		return units
	}
	return append(units, UnitDays)
}

func (s State) String() string {
	if s.Arrived {
		return "arrived"
	}
	return fmt.Sprintf("%dd %02dh %02dm %02ds", s.Days, s.Hours, s.Minutes, s.Seconds)
}
