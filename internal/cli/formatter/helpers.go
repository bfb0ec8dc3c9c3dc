package formatter

import (
	"fmt"
	"time"
)

// FormatMinutes renders a minute count as "45m", "2h" or "1h30m".
func FormatMinutes(min int) string {
	h, m := min/60, min%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dm", h, m)
	}
}

// RelativeDays renders a day delta as "today", "in 3d" or "2d ago",
// styled by urgency.
func RelativeDays(days int) string {
	switch {
	case days < 0:
		return StyleRed.Render(fmt.Sprintf("%dd ago", -days))
	case days == 0:
		return StyleYellow.Render("today")
	case days <= 3:
		return StyleYellow.Render(fmt.Sprintf("in %dd", days))
	default:
		return StyleFg.Render(fmt.Sprintf("in %dd", days))
	}
}

// ShortDate renders a timestamp as YYYY-MM-DD.
func ShortDate(t time.Time) string {
	return t.Format("2006-01-02")
}
