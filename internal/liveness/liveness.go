// Package liveness infers whether the person in front of the camera is a
// live subject, from eye-closure and head-motion observed across frames.
// The check is a weak one-shot anti-spoofing signal, not challenge-response:
// a completed blink, or any head motion after the eyes were once seen
// closed, confirms liveness for the rest of the session.
package liveness

import (
	"math"

	"github.com/example/proctor-ai/internal/detector"
)

const (
	// DefaultEARThreshold separates open from closed eyes. Tuned constant,
	// not derived.
	DefaultEARThreshold = 0.2
	// DefaultHeadMoveMinPx is the nose displacement on either axis that
	// counts as head motion.
	DefaultHeadMoveMinPx = 15
)

// Status is the tracker state after observing one frame.
type Status struct {
	FaceFound     bool
	EyesClosed    bool
	IsAlive       bool
	JustConfirmed bool
}

// Tracker accumulates liveness state for a single session. It is owned by
// one connection and is not safe for concurrent use; frames must be observed
// in arrival order.
type Tracker struct {
	earThreshold  float64
	headMoveMinPx float64

	prevNose       *detector.Point
	eyesWereClosed bool
	headMoved      bool
	isAlive        bool
}

// NewTracker returns a tracker with the given thresholds. Zero values fall
// back to the defaults.
func NewTracker(earThreshold, headMoveMinPx float64) *Tracker {
	if earThreshold <= 0 {
		earThreshold = DefaultEARThreshold
	}
	if headMoveMinPx <= 0 {
		headMoveMinPx = DefaultHeadMoveMinPx
	}
	return &Tracker{earThreshold: earThreshold, headMoveMinPx: headMoveMinPx}
}

// EAR computes the eye aspect ratio from the six-point eye landmark layout:
// (‖p1−p5‖ + ‖p2−p4‖) / (2·‖p0−p3‖). Near 0 for a closed eye, larger as the
// eye opens.
func EAR(eye [6]detector.Point) float64 {
	a := dist(eye[1], eye[5])
	b := dist(eye[2], eye[4])
	c := dist(eye[0], eye[3])
	if c == 0 {
		return 0
	}
	return (a + b) / (2 * c)
}

// Observe updates the tracker with one frame's landmarks. A nil landmark set
// means no face was found; state carries over unchanged. IsAlive never
// reverts to false once confirmed.
func (t *Tracker) Observe(landmarks *detector.FaceLandmarks) Status {
	if landmarks == nil {
		return Status{IsAlive: t.isAlive}
	}

	if t.prevNose != nil {
		dx := math.Abs(landmarks.Nose.X - t.prevNose.X)
		dy := math.Abs(landmarks.Nose.Y - t.prevNose.Y)
		if dx > t.headMoveMinPx || dy > t.headMoveMinPx {
			t.headMoved = true
		}
	}
	nose := landmarks.Nose
	t.prevNose = &nose

	avgEAR := (EAR(landmarks.LeftEye) + EAR(landmarks.RightEye)) / 2
	closed := avgEAR < t.earThreshold

	status := Status{FaceFound: true, EyesClosed: closed}

	if closed {
		t.eyesWereClosed = true
	}
	// Confirmation requires a prior eyes-closed observation, then either a
	// re-opened eye (a completed blink) or accumulated head motion.
	if !t.isAlive && t.eyesWereClosed && (!closed || t.headMoved) {
		t.isAlive = true
		status.JustConfirmed = true
	}

	status.IsAlive = t.isAlive
	return status
}

// IsAlive reports whether liveness has been confirmed for this session.
func (t *Tracker) IsAlive() bool {
	return t.isAlive
}

func dist(a, b detector.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
