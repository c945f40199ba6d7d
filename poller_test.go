package main

import (
	"testing"
	"time"
)

func alwaysFalse(time.Duration) bool { return false }
func alwaysTrue(time.Duration) bool  { return true }

func TestWaitForAnyReturnsFirstDeclaredOnTie(t *testing.T) {
	conds := []PollCondition{
		{Label: "first", Detect: alwaysTrue},
		{Label: "second", Detect: alwaysTrue},
	}

	label, ok := waitForAny(conds, time.Millisecond, 100*time.Millisecond, time.Millisecond)
	if !ok {
		t.Fatal("expected a condition to fire")
	}
	if label != "first" {
		t.Errorf("tie-break returned %q, want first", label)
	}
}

func TestWaitForAnyNeverGivesUpEarly(t *testing.T) {
	conds := []PollCondition{{Label: "never", Detect: alwaysFalse}}
	timeout := 50 * time.Millisecond

	start := time.Now()
	label, ok := waitForAny(conds, 10*time.Millisecond, timeout, time.Millisecond)
	elapsed := time.Since(start)

	if ok || label != "" {
		t.Fatalf("got (%q, %v), want no result", label, ok)
	}
	if elapsed < timeout {
		t.Errorf("returned after %v, before the %v timeout", elapsed, timeout)
	}
}

func TestWaitForAnyFiresOnLaterCycle(t *testing.T) {
	calls := 0
	conds := []PollCondition{{
		Label: "eventually",
		Detect: func(time.Duration) bool {
			calls++
			return calls >= 3
		},
	}}

	label, ok := waitForAny(conds, time.Millisecond, time.Second, time.Millisecond)
	if !ok || label != "eventually" {
		t.Fatalf("got (%q, %v), want the delayed condition", label, ok)
	}
	if calls != 3 {
		t.Errorf("detector called %d times, want 3", calls)
	}
}

func TestWaitForAnyChecksEveryConditionEachCycle(t *testing.T) {
	var order []string
	record := func(name string, fire bool) func(time.Duration) bool {
		return func(time.Duration) bool {
			order = append(order, name)
			return fire
		}
	}

	conds := []PollCondition{
		{Label: "a", Detect: record("a", false)},
		{Label: "b", Detect: record("b", false)},
		{Label: "c", Detect: record("c", true)},
	}

	label, ok := waitForAny(conds, time.Millisecond, time.Second, time.Millisecond)
	if !ok || label != "c" {
		t.Fatalf("got (%q, %v), want c", label, ok)
	}
	want := []string{"a", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("detectors called %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("detectors called %v, want %v", order, want)
		}
	}
}
