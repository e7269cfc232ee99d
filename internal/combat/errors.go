package combat

// #region imports
import (
	"errors"
	"fmt"
	"time"
)

// #endregion

// #region errors

// StateTimeoutError reports that none of the expected successor states
// appeared on screen within the wait budget.
type StateTimeoutError struct {
	Node     string
	Expected []State
	Timeout  time.Duration
}

func (e *StateTimeoutError) Error() string {
	return fmt.Sprintf("node %s: none of %v appeared within %s", e.Node, e.Expected, e.Timeout)
}

// PlanError reports an invalid battle plan document.
type PlanError struct {
	Field string
	Cause error
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("plan field %q: %v", e.Field, e.Cause)
}

func (e *PlanError) Unwrap() error { return e.Cause }

// ErrDetourLoop is returned when the detour path keeps re-spotting the
// same enemy past the bounded retry count.
var ErrDetourLoop = errors.New("detour loop exceeded retry bound")

// IsTimeout reports whether err is a state wait timeout.
func IsTimeout(err error) bool {
	var te *StateTimeoutError
	return errors.As(err, &te)
}

// #endregion
