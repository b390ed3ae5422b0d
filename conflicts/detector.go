package conflicts

import (
	"strings"

	"github.com/DANGPP/btlthayPhong-sub000/models"
)

// Detect flags proposed tasks whose due time collides with an existing,
// not-yet-completed task. Equality is an exact string match on the raw due
// time; no format or timezone normalization happens first, matching how the
// clients compare. Proposed tasks with a blank due time are never flagged.
// Pure function; the result is a subset of proposed, in input order.
func Detect(existing, proposed []models.Task) []models.Task {
	flagged := []models.Task{}
	for _, p := range proposed {
		if strings.TrimSpace(p.DueTime) == "" {
			continue
		}
		for _, e := range existing {
			if e.IsCompleted() {
				continue
			}
			if e.DueTime == p.DueTime {
				flagged = append(flagged, p)
				break
			}
		}
	}
	return flagged
}
