package ensemble

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// FanOut invokes every enabled specialist concurrently against the same
// document and collects one Outcome per specialist. It is a synchronization
// barrier: all invocations start together and FanOut waits for every one to
// reach a terminal state. A failing specialist never cancels its peers and
// never escapes the fan-out; its slot holds a failed Outcome instead.
type FanOut struct {
	timeout    time.Duration
	onProgress func(ProgressEvent)
	log        *logrus.Logger
}

// NewFanOut creates a FanOut. timeout bounds each invocation (0 = none),
// onProgress is called from each goroutine and may be nil, and a nil logger
// falls back to logrus.New().
func NewFanOut(timeout time.Duration, onProgress func(ProgressEvent), log *logrus.Logger) *FanOut {
	if log == nil {
		log = logrus.New()
	}
	return &FanOut{
		timeout:    timeout,
		onProgress: onProgress,
		log:        log,
	}
}

// Run dispatches every specialist in parallel and waits for all of them.
// The returned map holds exactly one Outcome per entry of specialists,
// keyed by kind; results are attributed by identity, never by completion
// order. A specialist registered as nil counts as failed.
func (f *FanOut) Run(ctx context.Context, specialists map[SpecialistKind]Specialist, enabled []SpecialistKind, doc Document) map[SpecialistKind]Outcome {
	outcomes := make([]Outcome, len(enabled))

	// Plain errgroup, not WithContext: the first failure must not abandon
	// the remaining invocations.
	var g errgroup.Group

	for i, kind := range enabled {
		f.emit(ProgressEvent{Specialist: kind, Status: ProgressPending})

		g.Go(func() error {
			f.emit(ProgressEvent{Specialist: kind, Status: ProgressWorking})

			outcome := f.invoke(ctx, specialists[kind], kind, doc)
			outcomes[i] = outcome

			if outcome.Failed() {
				f.log.WithFields(logrus.Fields{
					"specialist": kind.String(),
					"error":      outcome.Err.Error(),
				}).Warn("specialist evaluation failed")
				f.emit(ProgressEvent{
					Specialist: kind,
					Status:     ProgressFailed,
					Message:    outcome.Err.Error(),
				})
			} else {
				f.emit(ProgressEvent{Specialist: kind, Status: ProgressComplete})
			}
			return nil
		})
	}

	// Every goroutine returns nil; Wait is purely the barrier.
	_ = g.Wait()

	byKind := make(map[SpecialistKind]Outcome, len(enabled))
	for _, o := range outcomes {
		byKind[o.Kind] = o
	}
	return byKind
}

// invoke runs a single specialist, converting a returned error, a panic, or
// a missed deadline into a failed Outcome.
func (f *FanOut) invoke(ctx context.Context, s Specialist, kind SpecialistKind, doc Document) (out Outcome) {
	out = Outcome{Kind: kind}

	defer func() {
		if r := recover(); r != nil {
			out.Eval = nil
			out.Err = fmt.Errorf("specialist %s panicked: %v", kind, r)
		}
	}()

	if s == nil {
		out.Err = fmt.Errorf("no specialist registered for kind %s", kind)
		return out
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	eval, err := s.Evaluate(ctx, doc)
	if err != nil {
		out.Err = fmt.Errorf("specialist %s: %w", kind, err)
		return out
	}
	out.Eval = &eval
	return out
}

// emit sends a progress event if a callback is registered.
func (f *FanOut) emit(ev ProgressEvent) {
	if f.onProgress != nil {
		f.onProgress(ev)
	}
}
