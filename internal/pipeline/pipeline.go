// Package pipeline runs the per-frame proctoring analysis: object
// detection, liveness tracking, verdict, evidence dispatch and frame
// annotation. One pipeline instance belongs to one session connection and
// processes frames strictly in arrival order.
package pipeline

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/example/proctor-ai/internal/detector"
	"github.com/example/proctor-ai/internal/dispatch"
	"github.com/example/proctor-ai/internal/gate"
	"github.com/example/proctor-ai/internal/liveness"
)

// Submitter is the asynchronous evidence sink. Calls must return without
// waiting on the durable store.
type Submitter interface {
	SubmitEvidence(payload dispatch.EvidencePayload)
	SubmitLiveness(payload dispatch.LivenessPayload)
}

// Report summarises what one frame showed.
type Report struct {
	Detections  []detector.Detection
	PersonCount int
	Contraband  bool
	Violation   bool
	Liveness    liveness.Status
}

// Config carries the tunable detection thresholds.
type Config struct {
	ConfidenceFloor float64
	EARThreshold    float64
	HeadMoveMinPx   float64
}

// Pipeline analyses the frames of a single session.
type Pipeline struct {
	sessionID uint
	objects   detector.ObjectDetector
	faces     detector.FaceScanner
	tracker   *liveness.Tracker
	gate      *gate.Gate
	submitter Submitter
	logger    *zap.Logger

	confidenceFloor float64
	targets         map[string]struct{}

	framesProcessed atomic.Uint64
	lastFrameUnix   atomic.Int64
}

// New builds a pipeline for one session connection.
func New(sessionID uint, objects detector.ObjectDetector, faces detector.FaceScanner, submitter Submitter, cfg Config, logger *zap.Logger) *Pipeline {
	floor := cfg.ConfidenceFloor
	if floor <= 0 {
		floor = 0.5
	}
	return &Pipeline{
		sessionID:       sessionID,
		objects:         objects,
		faces:           faces,
		tracker:         liveness.NewTracker(cfg.EARThreshold, cfg.HeadMoveMinPx),
		gate:            gate.New(),
		submitter:       submitter,
		logger:          logger.Named("pipeline").With(zap.Uint("session_id", sessionID)),
		confidenceFloor: floor,
		targets:         detector.TargetLabels(),
	}
}

// ProcessFrame analyses one encoded frame and returns the annotated frame to
// send back. Every call yields an output frame: model or decode failures
// degrade to an unannotated pass-through, never to a dropped frame or a
// terminated stream.
func (p *Pipeline) ProcessFrame(ctx context.Context, frame []byte) ([]byte, Report) {
	defer func() {
		p.framesProcessed.Add(1)
		p.lastFrameUnix.Store(time.Now().Unix())
	}()

	var report Report

	img, err := decodeFrame(frame)
	if err != nil {
		p.logger.Warn("frame decode failed, passing frame through", zap.Error(err))
		return frame, report
	}

	landmarks, err := p.faces.ScanFace(ctx, frame)
	if err != nil {
		p.logger.Warn("face scan failed, treating frame as faceless", zap.Error(err))
		landmarks = nil
	}
	report.Liveness = p.tracker.Observe(landmarks)

	if report.Liveness.IsAlive && p.gate.ShouldDispatch(gate.KindLiveness) {
		p.submitter.SubmitLiveness(dispatch.LivenessPayload{SessionID: p.sessionID, IsLive: true})
	}

	raw, err := p.objects.Detect(ctx, frame)
	if err != nil {
		p.logger.Warn("object detection failed, treating frame as empty", zap.Error(err))
		raw = nil
	}
	report.Detections = detector.Filter(raw, p.targets, p.confidenceFloor)

	for _, d := range report.Detections {
		switch d.Label {
		case detector.LabelPerson:
			report.PersonCount++
		case detector.LabelCellPhone, detector.LabelBook:
			report.Contraband = true
		}
	}
	report.Violation = report.PersonCount > 1 || report.Contraband

	annotated := renderAnnotated(img, report, landmarks)

	if report.Violation && p.gate.ShouldDispatch(gate.KindEvidence) {
		p.submitter.SubmitEvidence(dispatch.EvidencePayload{
			SessionID:    p.sessionID,
			IsManyPeople: report.PersonCount > 1,
			IsDeviceUsed: report.Contraband,
			Frame:        annotated,
		})
	}

	return annotated, report
}

// FramesProcessed reports how many frames this pipeline has consumed, for
// throughput observability.
func (p *Pipeline) FramesProcessed() uint64 {
	return p.framesProcessed.Load()
}

// LastFrameAt reports when the last frame finished processing.
func (p *Pipeline) LastFrameAt() time.Time {
	unix := p.lastFrameUnix.Load()
	if unix == 0 {
		return time.Time{}
	}
	return time.Unix(unix, 0)
}
