package shift

import "errors"

var ErrInvalidDay = errors.New("invalid day, use YYYY-MM-DD")
