// Package arcball is an arcball rotation controller: it fits a sphere around a scene's objects, projects
// pointer positions onto that sphere, and turns drags across it into rotations, handed on as XYZ Euler angles.
package arcball

import "errors"

// ErrDegenerateSphere is returned when there's no geometry to fit an arcball sphere around and no explicit
// sphere has been given, so a drag can't be started.
var ErrDegenerateSphere = errors.New("degenerate arcball sphere")

// ErrUnknownGestureAction is returned when a gesture script contains an action other than press, move, or release.
var ErrUnknownGestureAction = errors.New("unknown gesture action")
