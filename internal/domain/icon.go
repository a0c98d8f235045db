package domain

import (
	"context"
	"time"
)

// Icon is the catalog entry of an icon seen in the icons directory, identified
// by its filename together with the hash of its encoded PNG
type Icon struct {
	SHA256   string
	Filename string
	// Position in the rotation order, -1 when the icon is no longer loaded
	Position int
	Active   bool
	Served   int64
	LoadedAt time.Time
}

// IconRepository defines the interface for the icon catalog
type IconRepository interface {
	// Sync marks exactly the given icons as active, in order
	Sync(ctx context.Context, icons []*Icon) error

	// Get retrieves an icon by filename and hash of its encoded PNG
	Get(ctx context.Context, filename, sha256 string) (*Icon, error)

	// List retrieves all icons, active ones first in rotation order
	List(ctx context.Context) ([]*Icon, error)

	// RecordServed increments the served counter of an icon
	RecordServed(ctx context.Context, filename, sha256 string) error

	// Count returns the number of active icons
	Count(ctx context.Context) (int64, error)
}
