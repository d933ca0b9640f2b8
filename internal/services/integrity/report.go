package integrity

import (
	"fmt"
	"strings"
)

// String renders the report as plain text
func (r *Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "integrity check: %d events scanned\n", r.EventsScanned)
	fmt.Fprintf(&b, "stored:  %s\n", r.Stored)
	fmt.Fprintf(&b, "derived: %s\n", r.Derived)

	if r.OK() {
		b.WriteString("all ok\n")
		return b.String()
	}

	fmt.Fprintf(&b, "issues (%d):\n", len(r.Issues))
	for _, issue := range r.Issues {
		fmt.Fprintf(&b, "  - %s\n", issue)
	}

	if r.Repaired != nil {
		fmt.Fprintf(&b, "repaired: %s\n", r.Repaired)
		b.WriteString("ratings were not recomputed, run a full reprocess to fix rating drift\n")
	}

	return b.String()
}

func (c Counters) String() string {
	return fmt.Sprintf("next_event_id=%d next_game_id=%d cursor=%d", c.NextEventID, c.NextGameID, c.Cursor)
}
