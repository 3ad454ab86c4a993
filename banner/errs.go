package banner

import "errors"

var (
	// ErrFit reports a title whose spaced form does not fit between
	// the two border markers at the requested width.
	ErrFit = errors.New("title does not fit")

	// ErrBadParams reports out of range width, rank or pad values.
	ErrBadParams = errors.New("bad banner parameters")
)
