package scheduling

import "errors"

// ErrInvalidDuration rejects non-positive slot durations.
var ErrInvalidDuration = errors.New("slot duration must be a positive number of minutes")
