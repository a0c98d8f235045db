package iconchanger

import "errors"

var (
	// ErrNotFound is returned when an icon path does not reference a regular file.
	ErrNotFound = errors.New("icon not found")
	// ErrDecode is returned when the icon bytes are not a decodable image.
	ErrDecode = errors.New("icon is not a decodable image")
	// ErrInvalidDimensions is returned for images that are not IconSize x IconSize.
	ErrInvalidDimensions = errors.New("icon has invalid dimensions")
	// ErrIO is returned when the config file cannot be read, created or written.
	ErrIO = errors.New("config io error")
	// ErrMalformedConfig is returned when an existing config file cannot be parsed.
	ErrMalformedConfig = errors.New("malformed config")
	// ErrDirectory is returned when the icons directory is missing or cannot be created.
	ErrDirectory = errors.New("icons directory unavailable")
)
