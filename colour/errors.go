package colour

import "errors"

// ErrInvalidHex indicates a string could not be parsed as a #rrggbb or
// #rgb hex colour.
var ErrInvalidHex = errors.New("colour: invalid hex colour string")
