// Package timeline flattens a notation tree into onset-ordered events with
// exact rational positions, and maps them onto an integer tick grid.
package timeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cbegin/stan-go/internal/notation"
	"github.com/cbegin/stan-go/internal/rational"
)

// DefaultResolution is the number of ticks in a whole note.
const DefaultResolution = 1920

// DefaultBPM is the tempo assumed when none is given.
const DefaultBPM = 120.0

var ErrInexactTick = errors.New("position does not fall on a tick")

// Event is one sounding or silent leaf of the tree.
type Event struct {
	Kind    notation.Kind // KindRest, KindNote or KindChord
	Onset   notation.Duration
	Length  notation.Duration
	Pitches []notation.Pitch
	Depth   int // beams and tuplets enclosing the leaf
}

// End is the offset at which the event stops.
func (e Event) End() notation.Duration { return e.Onset.Add(e.Length) }

func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s +%s %s", e.Onset, e.Length, e.Kind)
	for _, p := range e.Pitches {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	return b.String()
}

// Timeline is an immutable flattened view of one column.
type Timeline struct {
	events []Event
	end    notation.Duration
}

// New walks c depth-first. Tuplet children are scaled by value/inner so a
// tuplet occupies exactly its notated value. Deeply nested tuplets can push
// positions past int64; New then fails with rational.ErrOverflow.
func New(c notation.Column) (*Timeline, error) {
	t := &Timeline{}
	end, err := t.walk(c, rational.Zero(), rational.FromInt(1), 0)
	if err != nil {
		return nil, err
	}
	t.end = notation.DurationFromRational(end)
	return t, nil
}

// walk appends the events of c starting at onset and returns where c ends.
func (t *Timeline) walk(c notation.Column, onset, scale rational.Rational, depth int) (rational.Rational, error) {
	switch c := c.(type) {
	case notation.Rest:
		return t.leaf(notation.KindRest, c.Value(), nil, onset, scale, depth)
	case notation.Note:
		return t.leaf(notation.KindNote, c.Value(), []notation.Pitch{c.Pitch()}, onset, scale, depth)
	case notation.Chord:
		return t.leaf(notation.KindChord, c.Value(), c.Pitches(), onset, scale, depth)
	case notation.Beam:
		var err error
		for _, e := range c.Elements() {
			if onset, err = t.walk(e, onset, scale, depth+1); err != nil {
				return onset, err
			}
		}
		return onset, nil
	case notation.Tuplet:
		inner := c.Inner()
		if inner.IsZero() {
			return onset, nil
		}
		ratio, err := c.Value().Duration().Rational().Quo(inner.Rational())
		if err != nil {
			return onset, err
		}
		child, err := scale.MulChecked(ratio)
		if err != nil {
			return onset, fmt.Errorf("tuplet at depth %d: %w", depth, err)
		}
		for _, e := range c.Elements() {
			if onset, err = t.walk(e, onset, child, depth+1); err != nil {
				return onset, err
			}
		}
		return onset, nil
	}
	return onset, nil
}

func (t *Timeline) leaf(kind notation.Kind, v notation.Value, pitches []notation.Pitch, onset, scale rational.Rational, depth int) (rational.Rational, error) {
	length, err := v.Duration().Rational().MulChecked(scale)
	if err != nil {
		return onset, fmt.Errorf("%s at depth %d: %w", kind, depth, err)
	}
	end, err := onset.AddChecked(length)
	if err != nil {
		return onset, fmt.Errorf("%s at depth %d: %w", kind, depth, err)
	}
	t.events = append(t.events, Event{
		Kind:    kind,
		Onset:   notation.DurationFromRational(onset),
		Length:  notation.DurationFromRational(length),
		Pitches: pitches,
		Depth:   depth,
	})
	return end, nil
}

// Events returns a copy of the flattened events in onset order.
func (t *Timeline) Events() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

func (t *Timeline) Len() int { return len(t.events) }

// End is the total length; it equals notation.DurationOf of the source column.
func (t *Timeline) End() notation.Duration { return t.end }

// TickEvent is an Event placed on an integer grid.
type TickEvent struct {
	Event
	Tick     int
	Duration int
}

// Ticks maps every event onto a grid of resolution ticks per whole note.
// It fails if any onset or length falls between ticks.
func (t *Timeline) Ticks(resolution int) ([]TickEvent, error) {
	if resolution <= 0 {
		return nil, fmt.Errorf("resolution must be positive, got %d", resolution)
	}
	out := make([]TickEvent, 0, len(t.events))
	for i, ev := range t.events {
		tick, err := toTicks(ev.Onset, resolution)
		if err != nil {
			return nil, fmt.Errorf("event %d onset: %w", i, err)
		}
		dur, err := toTicks(ev.Length, resolution)
		if err != nil {
			return nil, fmt.Errorf("event %d length: %w", i, err)
		}
		out = append(out, TickEvent{Event: ev, Tick: tick, Duration: dur})
	}
	return out, nil
}

func toTicks(d notation.Duration, resolution int) (int, error) {
	r, err := d.Rational().MulChecked(rational.FromInt(int64(resolution)))
	if err != nil {
		return 0, err
	}
	if r.Den() != 1 {
		return 0, fmt.Errorf("%s at resolution %d: %w", d, resolution, ErrInexactTick)
	}
	return int(r.Num()), nil
}

// Seconds converts d to wall time at bpm quarter notes per minute.
func Seconds(d notation.Duration, bpm float64) float64 {
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	return float64(d.Num()) / float64(d.Den()) * 240.0 / bpm
}
