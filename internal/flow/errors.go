package flow

import "errors"

// ErrIncomplete is returned by Submit when the run is not on the last
// question or still has unanswered slots.
var ErrIncomplete = errors.New("questionnaire is not complete")
