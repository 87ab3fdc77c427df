package ensemble

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReporter_EmitAndSubscribe(t *testing.T) {
	pr := NewProgressReporter()
	pr.Emit(ProgressEvent{Specialist: KindVision, Status: ProgressWorking})
	pr.Emit(ProgressEvent{Specialist: KindVision, Status: ProgressComplete})
	pr.Close()

	var events []ProgressEvent
	for event := range pr.Subscribe() {
		events = append(events, event)
	}

	require.Len(t, events, 2)
	assert.Equal(t, ProgressWorking, events[0].Status)
	assert.Equal(t, ProgressComplete, events[1].Status)
}

func TestProgressReporter_DropsWhenFull(t *testing.T) {
	pr := NewProgressReporter()
	for i := 0; i < 200; i++ {
		pr.Emit(ProgressEvent{Specialist: KindVision, Status: ProgressWorking})
	}
	pr.Close()

	count := 0
	for range pr.Subscribe() {
		count++
	}
	assert.Equal(t, 64, count)
}

func TestProgressReporter_EmitAfterCloseIsNoop(t *testing.T) {
	pr := NewProgressReporter()
	pr.Close()
	pr.Close()

	assert.NotPanics(t, func() {
		pr.Emit(ProgressEvent{Specialist: KindLayout, Status: ProgressFailed})
	})
}

func TestEngine_ValidateAfterCloseDoesNotPanic(t *testing.T) {
	e := NewEngine(DefaultConfig(), map[SpecialistKind]Specialist{
		KindVision: fixedScore(KindVision, 1.0),
	}, nil, quietLogger())
	e.Close()

	var report *Report
	assert.NotPanics(t, func() {
		report = e.Validate(context.Background(), testDoc(2), "fast")
	})
	require.NotNil(t, report)
	assert.Equal(t, "A+", report.Verdict.Grade)
}
