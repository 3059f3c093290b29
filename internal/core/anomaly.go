package core

import "fmt"

// AnomalyKind is the error taxonomy for non-fatal data problems.
type AnomalyKind string

const (
	// ReferenceError: a record points at a category, payment method,
	// customer, or vendor that its vocabulary/table does not contain.
	ReferenceError AnomalyKind = "reference_error"

	// InvariantViolation: a computed check value (balance-sheet equality,
	// reconciliation difference) is nonzero beyond the configured epsilon.
	InvariantViolation AnomalyKind = "invariant_violation"
)

// Severity ranks an anomaly. Warnings indicate data inconsistency the caller
// should present; errors indicate the engine's own self-consistency failed.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Anomaly is a structured, recoverable problem attached to a result bundle.
// Computation never aborts for one bad record: the record's unresolved
// contribution is zero and the anomaly tells the caller what did not match.
type Anomaly struct {
	Kind     AnomalyKind `json:"kind"`
	Severity Severity    `json:"severity"`
	Subject  string      `json:"subject"` // record or check the anomaly is about
	Detail   string      `json:"detail"`
}

func (a Anomaly) String() string {
	return fmt.Sprintf("[%s/%s] %s: %s", a.Kind, a.Severity, a.Subject, a.Detail)
}

func referenceWarning(subject, format string, args ...any) Anomaly {
	return Anomaly{
		Kind:     ReferenceError,
		Severity: SeverityWarning,
		Subject:  subject,
		Detail:   fmt.Sprintf(format, args...),
	}
}

func invariantAnomaly(severity Severity, subject, format string, args ...any) Anomaly {
	return Anomaly{
		Kind:     InvariantViolation,
		Severity: severity,
		Subject:  subject,
		Detail:   fmt.Sprintf(format, args...),
	}
}
