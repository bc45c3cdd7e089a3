package checkout

// Status tracks a checkout visit through the form lifecycle.
type Status string

const (
	StatusEmpty      Status = "EMPTY"
	StatusHydrating  Status = "HYDRATING"
	StatusReady      Status = "READY"
	StatusValidating Status = "VALIDATING"
	StatusSubmitting Status = "SUBMITTING"
	StatusSubmitted  Status = "SUBMITTED"
)

// IsTerminal reports whether the visit is finished. A failed validation
// is not terminal; the form returns to READY for correction.
func (s Status) IsTerminal() bool {
	return s == StatusSubmitted
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}
