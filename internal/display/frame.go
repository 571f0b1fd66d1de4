// Package display composes countdown values and ring geometry into the frame
// every host surface renders.
package display

import (
	"time"

	"github.com/mattjoyce/launchpad/internal/countdown"
	"github.com/mattjoyce/launchpad/internal/ring"
)

// Unit identifies one countdown field.
type Unit int

const (
	Days Unit = iota
	Hours
	Minutes
	Seconds
)

// Units lists the fields in display order.
var Units = [4]Unit{Days, Hours, Minutes, Seconds}

var unitLabels = [4]string{"Days", "Hours", "Minutes", "Seconds"}

// Calibration maxima for the rings. Days fill against a year.
var unitMax = [4]float64{365, 24, 60, 60}

func (u Unit) String() string { return unitLabels[u] }

// Max returns the ring maximum for u.
func (u Unit) Max() float64 { return unitMax[u] }

// Value picks u's field out of left.
func (u Unit) Value(left countdown.TimeLeft) int {
	switch u {
	case Days:
		return left.Days
	case Hours:
		return left.Hours
	case Minutes:
		return left.Minutes
	default:
		return left.Seconds
	}
}

// UnitView is everything needed to draw one unit.
type UnitView struct {
	Unit  Unit    `json:"-"`
	Label string  `json:"label"`
	Value int     `json:"value"`
	Text  string  `json:"text"`
	Max   float64 `json:"max"`
	ring.State
}

// Frame is one tick's worth of display state.
type Frame struct {
	At      time.Time          `json:"at"`
	Target  time.Time          `json:"target"`
	Expired bool               `json:"expired"`
	Left    countdown.TimeLeft `json:"left"`
	Radius  float64            `json:"radius"`
	Units   [4]UnitView        `json:"units"`
}

// Compose evaluates engine at now and sizes one ring per unit with radius.
func Compose(engine *countdown.Engine, now time.Time, radius float64) Frame {
	left := engine.Tick(now)
	f := Frame{
		At:      now,
		Target:  engine.Target(),
		Expired: engine.Expired(now),
		Left:    left,
		Radius:  radius,
	}
	for i, u := range Units {
		v := u.Value(left)
		f.Units[i] = UnitView{
			Unit:  u,
			Label: u.String(),
			Value: v,
			Text:  countdown.Pad(v),
			Max:   u.Max(),
			State: ring.Ring{Radius: radius, Max: u.Max()}.Sample(v),
		}
	}
	return f
}
