package resp

import "errors"

var (
	ErrBadConfig = errors.New("bad config")
)
