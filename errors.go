// errors.go - error taxonomy for construction and audio capture failures.

package chladni

import "errors"

// ErrInvalidGridSize is returned by New when width or height is too
// small for the source injector's 3x3 patch to stay clear of the
// clamped boundary (see clampSource): the minimum is 5x5.
var ErrInvalidGridSize = errors.New("chladni: grid width and height must each be at least 5")

// ErrCaptureUnavailable is returned by StartMicrophone when the host has no
// usable input device or the backend failed to open one.
var ErrCaptureUnavailable = errors.New("chladni: audio capture device unavailable")
