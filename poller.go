package main

import "time"

// PollCondition pairs a detector with the label returned when it fires. The
// detector is handed a short per-check budget and must not block past it.
type PollCondition struct {
	Label  string
	Detect func(budget time.Duration) bool
}

// waitForAny samples every condition in declaration order each cycle until
// one fires or timeout elapses. Declaration order is the tie-break: when two
// conditions are true in the same cycle, the earlier-declared one wins.
//
// Returns ok=false only at or after the timeout, never before. The wait
// blocks the calling flow only; there is nothing else running.
func waitForAny(conds []PollCondition, interval, timeout, perCheck time.Duration) (string, bool) {
	start := time.Now()
	for {
		for _, c := range conds {
			if c.Detect(perCheck) {
				return c.Label, true
			}
		}

		remaining := timeout - time.Since(start)
		if remaining <= 0 {
			return "", false
		}
		if remaining < interval {
			time.Sleep(remaining)
		} else {
			time.Sleep(interval)
		}
	}
}
