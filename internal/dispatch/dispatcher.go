// Package dispatch delivers evidence to the durable store off the frame
// processing hot path. Delivery is best effort: the gate already caps how
// often the pipeline submits, and a lost dispatch is acceptable where a
// stalled exam stream is not.
package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/proctor-ai/internal/repository"
)

const deliveryTimeout = 10 * time.Second

// Store is the durable-store surface the worker needs.
type Store interface {
	SaveEvidence(ctx context.Context, evidence *repository.CheatingEvidence) error
	MarkLive(ctx context.Context, sessionID uint) (*repository.StudentSession, error)
}

// EvidencePayload describes one frame violation to persist.
type EvidencePayload struct {
	SessionID    uint
	IsManyPeople bool
	IsDeviceUsed bool
	Frame        []byte
}

// LivenessPayload marks a session's subject as confirmed live.
type LivenessPayload struct {
	SessionID uint
	IsLive    bool
}

type job struct {
	evidence *EvidencePayload
	liveness *LivenessPayload
}

// Dispatcher feeds a background worker through a bounded queue. Submissions
// never block; when the queue is full the payload is dropped and logged.
type Dispatcher struct {
	queue  chan job
	store  Store
	logger *zap.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// New starts a dispatcher with the given queue capacity.
func New(store Store, queueLen int, logger *zap.Logger) *Dispatcher {
	if queueLen <= 0 {
		queueLen = 64
	}
	d := &Dispatcher{
		queue:  make(chan job, queueLen),
		store:  store,
		logger: logger.Named("dispatch"),
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

// SubmitEvidence enqueues a violation for persistence and returns
// immediately.
func (d *Dispatcher) SubmitEvidence(payload EvidencePayload) {
	d.submit(job{evidence: &payload})
}

// SubmitLiveness enqueues a liveness confirmation and returns immediately.
func (d *Dispatcher) SubmitLiveness(payload LivenessPayload) {
	d.submit(job{liveness: &payload})
}

// Close stops accepting work and blocks until already-enqueued jobs are
// delivered. Session teardown must not call this; enqueued evidence outlives
// the connection that produced it.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()
	d.wg.Wait()
}

func (d *Dispatcher) submit(j job) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		d.logger.Warn("dispatch after shutdown dropped", zap.Uint("session_id", jobSessionID(j)))
		return
	}
	select {
	case d.queue <- j:
	default:
		d.logger.Warn("dispatch queue full, payload dropped", zap.Uint("session_id", jobSessionID(j)))
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for j := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		d.deliver(ctx, j)
		cancel()
	}
}

func (d *Dispatcher) deliver(ctx context.Context, j job) {
	switch {
	case j.evidence != nil:
		d.deliverEvidence(ctx, j.evidence)
	case j.liveness != nil:
		if _, err := d.store.MarkLive(ctx, j.liveness.SessionID); err != nil {
			d.logger.Error("liveness delivery failed",
				zap.Uint("session_id", j.liveness.SessionID), zap.Error(err))
		}
	}
}

// deliverEvidence writes one row per triggered category so the scorer sees
// both when a frame shows extra people and a device at once.
func (d *Dispatcher) deliverEvidence(ctx context.Context, payload *EvidencePayload) {
	fileName := fmt.Sprintf("frame_%s.jpg", uuid.NewString())

	var types []string
	if payload.IsManyPeople {
		types = append(types, repository.EvidenceMultiplePeople)
	}
	if payload.IsDeviceUsed {
		types = append(types, repository.EvidenceDevice)
	}

	for _, evidenceType := range types {
		row := &repository.CheatingEvidence{
			SessionID: payload.SessionID,
			Type:      evidenceType,
			FileName:  fileName,
			Blob:      payload.Frame,
		}
		if err := d.store.SaveEvidence(ctx, row); err != nil {
			d.logger.Error("evidence delivery failed",
				zap.Uint("session_id", payload.SessionID),
				zap.String("type", evidenceType),
				zap.Error(err))
		}
	}
}

func jobSessionID(j job) uint {
	if j.evidence != nil {
		return j.evidence.SessionID
	}
	if j.liveness != nil {
		return j.liveness.SessionID
	}
	return 0
}
