package itinerary

import "github.com/shoreday/shoreday/internal/apperr"

var (
	errReadItinerary = &apperr.Error{
		Message: "unable to read itinerary file %s",
	}

	errParseItinerary = &apperr.Error{
		Message: "itinerary is not valid YAML",
	}

	errNoActivities = &apperr.Error{
		Message: "itinerary contains no activities",
	}

	errMissingID = &apperr.Error{
		Message: "activity #%d has no id",
	}

	errDuplicateID = &apperr.Error{
		Message: "activity id %q is used more than once",
	}

	errInvalidClock = &apperr.Error{
		Message: "activity %q: %s time %q must be HH:MM (24-hour, zero-padded)",
	}

	errInvalidCoords = &apperr.Error{
		Message: "%s: coordinate %s is out of range",
	}

	errInvalidKind = &apperr.Error{
		Message: "activity %q: unknown type %q (must be logistics, transport or sightseeing)",
	}

	errInvalidOnboard = &apperr.Error{
		Message: "onboard time %q must be HH:MM (24-hour, zero-padded)",
	}

	// ErrUnknownActivity is returned when an activity id cannot be found.
	ErrUnknownActivity = &apperr.Error{
		Message: "no activity with id %q",
	}
)
