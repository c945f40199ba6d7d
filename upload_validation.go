package main

import (
	"errors"
	"fmt"
	"time"
)

// DocumentKind tags which half of a submission a state-machine run covers.
// The retry policy differs per kind, so every failure carries it.
type DocumentKind int

const (
	KindInterior DocumentKind = iota
	KindCover
)

func (k DocumentKind) String() string {
	if k == KindCover {
		return "cover"
	}
	return "interior"
}

// UploadOutcome is a point in the remote validator's observable lifecycle,
// not an internal client state. Values are transient: produced and consumed
// within a single run, never persisted.
type UploadOutcome int

const (
	OutcomeStarted UploadOutcome = iota
	OutcomeValidating
	OutcomeSuccess
	OutcomeError
	OutcomeFontError
	OutcomeReset
	OutcomeUnclear
)

func (o UploadOutcome) String() string {
	switch o {
	case OutcomeStarted:
		return "started"
	case OutcomeValidating:
		return "validating"
	case OutcomeSuccess:
		return "success"
	case OutcomeError:
		return "rejected"
	case OutcomeFontError:
		return "rejected (font not embedded)"
	case OutcomeReset:
		return "reset"
	default:
		return "unclear"
	}
}

// SubmissionError reports a failed state-machine run with enough context for
// the caller's retry policy: which document, which phase, and how it
// resolved.
type SubmissionError struct {
	Kind    DocumentKind
	Phase   string
	Outcome UploadOutcome
	Err     error
}

func (e *SubmissionError) Error() string {
	msg := fmt.Sprintf("%s submission failed while %s: %s", e.Kind, e.Phase, e.Outcome)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// retryWholeSubmission reports whether err is the restart-the-whole-
// submission signal, as opposed to an ordinary failure. Only a silent wizard
// reset maps to it: a rejection would just resubmit the same rejected file.
func retryWholeSubmission(err error) bool {
	var se *SubmissionError
	return errors.As(err, &se) && se.Outcome == OutcomeReset
}

const (
	labelStarted    = "started"
	labelValidating = "validating"
	labelSuccess    = "success"
	labelError      = "error"
	labelFontError  = "font-error"
	labelReset      = "reset"
)

// UploadValidator drives one file through upload, remote validation, and
// resolution. The remote wizard can silently revert to its pre-upload state
// mid-validation; that shows up as the reset probe firing and maps to
// OutcomeReset.
type UploadValidator struct {
	driver PageDriver
	probes ProbeConfig
	timing PollTiming
	debug  func(format string, args ...interface{})
}

func NewUploadValidator(driver PageDriver, probes ProbeConfig, timing PollTiming) *UploadValidator {
	return &UploadValidator{
		driver: driver,
		probes: probes,
		timing: timing,
		debug:  func(string, ...interface{}) {},
	}
}

func (v *UploadValidator) probe(label, query string) PollCondition {
	return PollCondition{
		Label: label,
		Detect: func(budget time.Duration) bool {
			return v.driver.Observe(query, budget)
		},
	}
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// RunValidation submits path through the wizard's file input and polls the
// remote lifecycle to a terminal observation:
//
//	Idle -> Uploading -> Validating -> {Success, Error, Reset, Unclear}
//
// Cover runs additionally watch the validator's font-embedding rejection,
// which the remote reports as a condition distinct from a generic error.
func (v *UploadValidator) RunValidation(path string, kind DocumentKind) (UploadOutcome, error) {
	interval := ms(v.timing.IntervalMs)
	perCheck := ms(v.timing.PerCheckMs)

	fmt.Printf(T("upload_submitting")+"\n", kind, path)

	// Each wizard page exposes exactly one file input.
	if err := v.driver.SubmitFile(0, path); err != nil {
		return OutcomeUnclear, &SubmissionError{Kind: kind, Phase: "uploading", Outcome: OutcomeUnclear, Err: err}
	}

	_, ok := waitForAny(
		[]PollCondition{v.probe(labelStarted, v.probes.UploadStarted)},
		interval, ms(v.timing.UploadTimeoutMs), perCheck,
	)
	if !ok {
		return OutcomeUnclear, &SubmissionError{Kind: kind, Phase: "uploading", Outcome: OutcomeUnclear}
	}
	v.debug("%s upload started", kind)

	// The validating badge can flicker past in under one poll cycle, so a
	// miss here is not a failure; the resolve wait re-checks reset anyway.
	label, ok := waitForAny(
		[]PollCondition{
			v.probe(labelValidating, v.probes.Validating),
			v.probe(labelReset, v.probes.WizardReset),
		},
		interval, ms(v.timing.ProgressTimeoutMs), perCheck,
	)
	if ok && label == labelReset {
		fmt.Printf(T("upload_reset_detected")+"\n", kind)
		return OutcomeReset, &SubmissionError{Kind: kind, Phase: "validating", Outcome: OutcomeReset}
	}
	if ok {
		fmt.Printf(T("upload_validating")+"\n", kind)
	}

	// Remote validation can take up to ~2 minutes. Success is checked first,
	// and for covers the font rejection outranks the generic one.
	conds := []PollCondition{v.probe(labelSuccess, v.probes.ValidationSuccess)}
	if kind == KindCover && v.probes.FontError != "" {
		conds = append(conds, v.probe(labelFontError, v.probes.FontError))
	}
	conds = append(conds,
		v.probe(labelError, v.probes.ValidationError),
		v.probe(labelReset, v.probes.WizardReset),
	)

	label, ok = waitForAny(conds, interval, ms(v.timing.ResolveTimeoutMs), perCheck)
	if !ok {
		return OutcomeUnclear, &SubmissionError{Kind: kind, Phase: "validating", Outcome: OutcomeUnclear}
	}

	switch label {
	case labelSuccess:
		fmt.Printf(T("upload_accepted")+"\n", kind)
		return OutcomeSuccess, nil
	case labelFontError:
		return OutcomeFontError, &SubmissionError{Kind: kind, Phase: "validating", Outcome: OutcomeFontError}
	case labelReset:
		fmt.Printf(T("upload_reset_detected")+"\n", kind)
		return OutcomeReset, &SubmissionError{Kind: kind, Phase: "validating", Outcome: OutcomeReset}
	default:
		return OutcomeError, &SubmissionError{Kind: kind, Phase: "validating", Outcome: OutcomeError}
	}
}
