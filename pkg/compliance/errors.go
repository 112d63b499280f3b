package compliance

import "errors"

// ErrSourceUnavailable wraps every failure to load records from a source.
var ErrSourceUnavailable = errors.New("record source unavailable")
