package roster

import "time"

// Worker is one entry in the roster. The slice position of a worker is its
// display order; there is no separate rank field.
type Worker struct {
	ID         string
	Name       string
	ShortName  string
	NationalID string
	Role       string
	Site       string // home site ("sede")
	Place      string // optional sub-location ("lugar")
	Color      string // assigned at creation, never changes
	IsReliever bool
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisplayName prefers the short name when one is set.
func (w Worker) DisplayName(useShort bool) string {
	if useShort && w.ShortName != "" {
		return w.ShortName
	}
	return w.Name
}

// Palette of worker colors. New workers pick color len(roster) mod len(Palette).
var Palette = []string{
	"#3b82f6", // blue
	"#ef4444", // red
	"#10b981", // green
	"#f59e0b", // amber
	"#8b5cf6", // violet
	"#ec4899", // pink
	"#14b8a6", // teal
	"#f97316", // orange
}
