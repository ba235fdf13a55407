package camera

import "errors"

// ErrInvalidPose is returned when a requested pose contains NaN or infinite components.
var ErrInvalidPose = errors.New("camera: invalid pose")
