package app

import "github.com/shoreday/shoreday/internal/apperr"

var (
	errMarkerName = &apperr.Error{
		Message: "a marker needs a name",
	}

	errInvalidCoordinate = &apperr.Error{
		Message: "invalid coordinate %q,%q: latitude must be within ±90 and longitude within ±180",
	}

	errRenameArgs = &apperr.Error{
		Message: "usage: shoreday markers rename <id> <name>",
	}

	errNoMarkerIDs = &apperr.Error{
		Message: "pass the ids of the markers to delete, or --all",
	}
)
