package store

import (
	"fmt"
	"sync"
)

// Delivery steps in progression order. The last one is terminal.
var trackingSteps = []string{"Ordered", "Packed", "Shipped", "Out for Delivery", "Delivered"}

// Rough days left to delivery per step.
var trackingETADays = []int{7, 5, 3, 1, 0}

// Tracker is the demo delivery stepper: seeded at "Packed", it only moves
// forward one step per manual advance and is not linked to any real order.
type Tracker struct {
	mu   sync.Mutex
	step int
}

// NewTracker seeds the stepper at "Packed".
func NewTracker() *Tracker {
	return &Tracker{step: 1}
}

// TrackingStatus is one observation of the stepper.
type TrackingStatus struct {
	Step      int      `json:"step"`
	Label     string   `json:"label"`
	Delivered bool     `json:"delivered"`
	ETA       string   `json:"eta"`
	Steps     []string `json:"steps"`
}

// Advance moves exactly one step forward, stopping at the terminal state.
func (t *Tracker) Advance() TrackingStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.step < len(trackingSteps)-1 {
		t.step++
	}
	return t.status()
}

// Status reports the current step without moving.
func (t *Tracker) Status() TrackingStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status()
}

func (t *Tracker) status() TrackingStatus {
	st := TrackingStatus{Step: t.step, Label: trackingSteps[t.step], Steps: trackingSteps}
	if t.step == len(trackingSteps)-1 {
		st.Delivered = true
		st.ETA = "Package delivered"
	} else {
		st.ETA = fmt.Sprintf("%d day(s) to delivery", trackingETADays[t.step])
	}
	return st
}

// Tracking returns the session's stepper.
func (s *Session) Tracking() *Tracker {
	return s.tracker
}
