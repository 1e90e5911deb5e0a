package liveness

import (
	"math"
	"testing"

	"github.com/example/proctor-ai/internal/detector"
)

func eyeAt(lidHeight float64) [6]detector.Point {
	// Corners at x=0 and x=4, upper lids at +lidHeight, lower at -lidHeight.
	return [6]detector.Point{
		{X: 0, Y: 0},
		{X: 1, Y: lidHeight},
		{X: 3, Y: lidHeight},
		{X: 4, Y: 0},
		{X: 3, Y: -lidHeight},
		{X: 1, Y: -lidHeight},
	}
}

func openFace(noseX, noseY float64) *detector.FaceLandmarks {
	return &detector.FaceLandmarks{
		LeftEye:  eyeAt(1),
		RightEye: eyeAt(1),
		Nose:     detector.Point{X: noseX, Y: noseY},
	}
}

func closedFace(noseX, noseY float64) *detector.FaceLandmarks {
	return &detector.FaceLandmarks{
		LeftEye:  eyeAt(0.1),
		RightEye: eyeAt(0.1),
		Nose:     detector.Point{X: noseX, Y: noseY},
	}
}

func TestEARCircleVsLine(t *testing.T) {
	circle := [6]detector.Point{
		{X: -1, Y: 0},
		{X: -0.5, Y: 1},
		{X: 0.5, Y: 1},
		{X: 1, Y: 0},
		{X: 0.5, Y: -1},
		{X: -0.5, Y: -1},
	}
	if got := EAR(circle); math.Abs(got-1) > 0.15 {
		t.Fatalf("fully open eye: expected EAR near 1, got %f", got)
	}

	var line [6]detector.Point
	for i := range line {
		line[i] = detector.Point{X: float64(i), Y: 0}
	}
	if got := EAR(line); got > 0.01 {
		t.Fatalf("collapsed eye: expected EAR near 0, got %f", got)
	}
}

func TestBlinkConfirmsLiveness(t *testing.T) {
	tracker := NewTracker(0, 0)

	status := tracker.Observe(openFace(100, 100))
	if status.IsAlive {
		t.Fatal("open eyes alone must not confirm liveness")
	}

	status = tracker.Observe(closedFace(100, 100))
	if status.IsAlive {
		t.Fatal("closed eyes must not confirm liveness yet")
	}
	if !status.EyesClosed {
		t.Fatal("expected eyes to register as closed")
	}

	status = tracker.Observe(openFace(100, 100))
	if !status.IsAlive || !status.JustConfirmed {
		t.Fatalf("completed blink should confirm liveness, got %+v", status)
	}
}

func TestHeadMotionConfirmsAfterEyesClosed(t *testing.T) {
	tracker := NewTracker(0, 0)

	tracker.Observe(openFace(100, 100))
	// Large nose displacement marks head motion but without a prior
	// eyes-closed observation nothing confirms.
	status := tracker.Observe(openFace(140, 100))
	if status.JustConfirmed {
		t.Fatal("head motion alone must not confirm liveness")
	}

	status = tracker.Observe(closedFace(140, 100))
	if !status.IsAlive {
		t.Fatal("eyes-closed with accumulated head motion should confirm")
	}
}

func TestLivenessIsMonotone(t *testing.T) {
	tracker := NewTracker(0, 0)

	tracker.Observe(closedFace(100, 100))
	if status := tracker.Observe(openFace(100, 100)); !status.IsAlive {
		t.Fatal("expected liveness confirmation")
	}

	// No later observation, including re-closed eyes or lost face, may
	// revert the confirmation.
	frames := []*detector.FaceLandmarks{
		closedFace(100, 100),
		nil,
		closedFace(200, 300),
		openFace(50, 50),
	}
	for i, frame := range frames {
		if status := tracker.Observe(frame); !status.IsAlive {
			t.Fatalf("frame %d reverted liveness", i)
		}
	}
}

func TestNoFaceLeavesStateUntouched(t *testing.T) {
	tracker := NewTracker(0, 0)

	tracker.Observe(closedFace(100, 100))
	tracker.Observe(nil)

	// The closed observation must survive the face-less frame.
	if status := tracker.Observe(openFace(100, 100)); !status.JustConfirmed {
		t.Fatalf("expected blink confirmation across a no-face frame, got %+v", status)
	}
}

func TestSmallHeadJitterIsIgnored(t *testing.T) {
	tracker := NewTracker(0, 0)

	tracker.Observe(closedFace(100, 100))
	status := tracker.Observe(closedFace(110, 110))
	if status.IsAlive {
		t.Fatal("sub-threshold nose jitter must not count as head motion")
	}
}
