package timeline

import "github.com/shoreday/shoreday/internal/apperr"

var (
	errArriveCmd = &apperr.Error{
		Message: "arrival command %q failed",
	}

	errNotify = &apperr.Error{
		Message: "unable to display notification",
	}
)
