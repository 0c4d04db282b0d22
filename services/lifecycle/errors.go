package lifecycle

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is matched by every rejected status change; use
// errors.Is against it.
var ErrIllegalTransition = errors.New("illegal status transition")

// ErrReasonRequired rejects a denial without a stated reason.
var ErrReasonRequired = errors.New("a denial reason is required")

// IllegalTransitionError reports a rejected status change with both
// endpoints so the calling screen can explain it to the user.
type IllegalTransitionError struct {
	Entity string // "appointment" or "leave request"
	From   string
	To     string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s cannot move from %q to %q", e.Entity, e.From, e.To)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}
