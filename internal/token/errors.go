package token

import "errors"

// ErrTokenNotFound is returned by a [Medium] when the requested key is
// absent or its entry has expired.
var ErrTokenNotFound = errors.New("token not found")
