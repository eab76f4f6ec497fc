package optimizer

import "fmt"

// ValidationError reports malformed input. It is raised before any scoring
// runs and is never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid optimization request: " + e.Reason
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// InfeasibleOfferError marks a single offer whose category bounds admit no
// valid price at the given copcar. The offer is skipped, not the request.
type InfeasibleOfferError struct {
	ModelName string
	OfferName string
	Copcar    float64
}

func (e *InfeasibleOfferError) Error() string {
	return fmt.Sprintf("no feasible price for offer %q (model %q) at copcar %.2f",
		e.OfferName, e.ModelName, e.Copcar)
}

// NoFeasibleCandidateError means every offer across every model was
// infeasible; the request fails as a whole.
type NoFeasibleCandidateError struct {
	CustomerID string
}

func (e *NoFeasibleCandidateError) Error() string {
	return fmt.Sprintf("no feasible candidate for customer %q", e.CustomerID)
}
