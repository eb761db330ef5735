package engine

import (
	"reflect"
	"testing"
)

func TestAxisInsertRemoveSegmentRoundTrip(t *testing.T) {
	a := NewAxis()
	rev, ok := a.InsertSegment(0, 0, 0)
	if !ok {
		t.Fatalf("InsertSegment failed")
	}
	want := []Event{NewStart(0), NewEnd(0)}
	if !reflect.DeepEqual(a.Events(), want) {
		t.Fatalf("Events() = %v, want %v", a.Events(), want)
	}
	if rev.Kind != HRemoveSegment || rev.StartIndex != 0 || rev.EndIndex != 1 {
		t.Fatalf("inverse history = %+v", rev)
	}
	if _, ok := a.Apply(rev); !ok {
		t.Fatalf("Apply(inverse) failed")
	}
	if a.Len() != 0 {
		t.Fatalf("axis not empty after round trip: %v", a.Events())
	}
}

func TestAxisLimitFrontRoundTrip(t *testing.T) {
	a := NewAxis()
	// [S1, S0, E1, E0]
	a.InsertSegment(0, 0, 0)
	a.InsertSegment(0, 1, 1)
	before := a.Events()

	rev, ok := a.LimitFront()
	if !ok {
		t.Fatalf("LimitFront failed")
	}
	wantAfter := []Event{NewEnd(0)}
	if !reflect.DeepEqual(a.Events(), wantAfter) {
		t.Fatalf("Events() after LimitFront = %v, want %v", a.Events(), wantAfter)
	}
	if rev.Kind != HEventInsertFront || rev.Event != NewEnd(1) || rev.Lost != 2 {
		t.Fatalf("inverse history = %+v", rev)
	}

	if _, ok := a.Apply(rev); !ok {
		t.Fatalf("Apply(inverse) failed")
	}
	if !reflect.DeepEqual(a.Events(), before) {
		t.Fatalf("round trip mismatch: got %v, want %v", a.Events(), before)
	}
}

func TestAxisLimitBackRoundTrip(t *testing.T) {
	a := NewAxis()
	// [S1, S0, E1, E0]
	a.InsertSegment(0, 0, 0)
	a.InsertSegment(0, 1, 1)
	before := a.Events()

	rev, ok := a.LimitBack()
	if !ok {
		t.Fatalf("LimitBack failed")
	}
	wantAfter := []Event{NewStart(1)}
	if !reflect.DeepEqual(a.Events(), wantAfter) {
		t.Fatalf("Events() after LimitBack = %v, want %v", a.Events(), wantAfter)
	}
	if rev.Kind != HEventInsertBack || rev.Event != NewStart(0) || rev.Lost != 2 {
		t.Fatalf("inverse history = %+v", rev)
	}

	if _, ok := a.Apply(rev); !ok {
		t.Fatalf("Apply(inverse) failed")
	}
	if !reflect.DeepEqual(a.Events(), before) {
		t.Fatalf("round trip mismatch: got %v, want %v", a.Events(), before)
	}
}

func TestAxisRemoveSegmentRejectsColourMismatch(t *testing.T) {
	a := NewAxis()
	a.InsertSegment(0, 0, 0)
	a.InsertSegment(0, 1, 1)
	// events = [S1, S0, E1, E0]; indices 0 and 1 are different colours.
	if _, ok := a.RemoveSegment(0, 1); ok {
		t.Fatalf("RemoveSegment should have rejected a colour mismatch")
	}
}
