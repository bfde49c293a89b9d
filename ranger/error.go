package ranger

import (
	"errors"

	"github.com/xy-planning-network/terminus"
)

var (
	ErrBadConfig = terminus.ErrBadConfig
	ErrNotValid  = errors.New("invalid")
)
