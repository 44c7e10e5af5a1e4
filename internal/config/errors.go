package config

import "github.com/shoreday/shoreday/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errReadEnvFile = &apperr.Error{
		Message: "reading env file %s failed",
	}

	errInvalidOnboardTime = &apperr.Error{
		Message: "trip.onboard_time must be HH:MM (24-hour), got %q",
	}

	errInvalidArriveCmd = &apperr.Error{
		Message: "settings.arrive_cmd is not a valid command line",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log.level must be one of debug, info, warn or error, got %q",
	}

	errInvalidLogSize = &apperr.Error{
		Message: "log.max_size_mb must be between 0 and %[2]d, got %[1]d",
	}

	errLatLngPair = &apperr.Error{
		Message: "--lat and --lng must be used together",
	}

	errInvalidAt = &apperr.Error{
		Message: "unable to understand --at %q",
	}

	errPrompt = &apperr.Error{
		Message: "interactive setup failed",
	}
)
