package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrMissingField   = fmt.Errorf("event field missing")
	ErrEmptyInvite    = fmt.Errorf("invite carries no state events")
	ErrAlreadyStarted = fmt.Errorf("account listener already started")
)
