package checkout

import (
	"fmt"

	"rentkiosk/models"
)

// WorkflowError signals a navigation decision that cannot be made, such as
// a booking status outside the known lifecycle.
type WorkflowError struct {
	Reason string
}

func (e *WorkflowError) Error() string {
	return "workflowError: " + e.Reason
}

// StepDataUnavailableError signals that a required upstream dependency of a
// step failed; no partial data is returned in that case.
type StepDataUnavailableError struct {
	Step  models.RouteToken
	Cause error
}

func (e *StepDataUnavailableError) Error() string {
	return fmt.Sprintf("stepDataUnavailable: step %s: %v", e.Step, e.Cause)
}

func (e *StepDataUnavailableError) Unwrap() error {
	return e.Cause
}
