package sensor

import "github.com/shoreday/shoreday/internal/apperr"

var (
	errUnknownSource = &apperr.Error{
		Message: "unknown position source %q (use nmea:<path>, ws://<host>/<path> or fixed:<lat>,<lng>)",
	}

	errInvalidFixed = &apperr.Error{
		Message: "invalid fixed position %q (expected <lat>,<lng>[,<heading>])",
	}

	errOpenNMEA = &apperr.Error{
		Message: "unable to open NMEA source %s",
	}

	errWatchNMEA = &apperr.Error{
		Message: "unable to follow NMEA source %s",
	}

	errReadNMEA = &apperr.Error{
		Message: "reading NMEA source failed",
	}

	errParseNMEA = &apperr.Error{
		Message: "unreadable NMEA sentence",
	}

	errNoFix = &apperr.Error{
		Message: "%s sentence reports no valid fix",
	}

	errDialSensor = &apperr.Error{
		Message: "unable to connect to sensor bridge at %s",
	}

	errReadSensor = &apperr.Error{
		Message: "sensor bridge connection lost",
	}

	errDecodeFrame = &apperr.Error{
		Message: "malformed sensor frame",
	}

	errBridgeReported = &apperr.Error{
		Message: "sensor bridge reported: %s",
	}
)
