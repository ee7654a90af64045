package views

import "errors"

var errOnTopUnsupported = errors.New("always-on-top is not supported for this window system")
