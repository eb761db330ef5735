package engine

import (
	"reflect"
	"testing"
)

func TestEventQueuePushPop(t *testing.T) {
	var q eventQueue
	q.PushBack(NewStart(0))
	q.PushBack(NewStart(1))
	q.PushFront(NewStart(2))
	if got := q.Slice(); !reflect.DeepEqual(got, []Event{NewStart(2), NewStart(0), NewStart(1)}) {
		t.Fatalf("Slice() = %v", got)
	}
	if got := q.PopFront(); got != NewStart(2) {
		t.Errorf("PopFront() = %v, want Start(2)", got)
	}
	if got := q.PopBack(); got != NewStart(1) {
		t.Errorf("PopBack() = %v, want Start(1)", got)
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d, want 1", q.Len())
	}
}

func TestEventQueueInsertRemoveAt(t *testing.T) {
	var q eventQueue
	q.PushBack(NewStart(0))
	q.PushBack(NewEnd(0))
	q.InsertAt(1, NewStart(1))
	if got := q.Slice(); !reflect.DeepEqual(got, []Event{NewStart(0), NewStart(1), NewEnd(0)}) {
		t.Fatalf("after InsertAt: %v", got)
	}
	removed := q.RemoveAt(1)
	if removed != NewStart(1) {
		t.Errorf("RemoveAt returned %v, want Start(1)", removed)
	}
	if got := q.Slice(); !reflect.DeepEqual(got, []Event{NewStart(0), NewEnd(0)}) {
		t.Fatalf("after RemoveAt: %v", got)
	}
}

func TestEventQueueClone(t *testing.T) {
	var q eventQueue
	q.PushBack(NewStart(0))
	clone := q.Clone()
	clone[0] = NewEnd(0)
	if q.At(0) != NewStart(0) {
		t.Errorf("Clone aliased the backing array")
	}
}
