package service

import "errors"

// ErrNotStarted is returned when rendering before Start or after Stop.
var ErrNotStarted = errors.New("dashboard service not started")
