// Package format renders the clock values printed by spaceworld datatime,
// following the display_date and display_time settings.
package format

import (
	"time"

	"github.com/spaceworld/console/internal/config"
)

// datePresets maps display_date values to Go layouts. Any other value is
// taken as a Go layout itself.
var datePresets = map[string]string{
	"":           "2006-01-02",
	"yyyy-mm-dd": "2006-01-02",
	"dd/mm/yyyy": "02/01/2006",
	"mm/dd/yyyy": "01/02/2006",
}

func dateLayout() string {
	setting, _ := config.Get("display_date")
	if layout, ok := datePresets[setting]; ok {
		return layout
	}
	return setting
}

func clockLayout() string {
	if setting, _ := config.Get("display_time"); setting == "12h" {
		return "3:04:05 PM"
	}
	return "15:04:05"
}

// Date renders the date, e.g. "2024-01-23".
func Date(t time.Time) string {
	return t.Format(dateLayout())
}

// TimeFull renders the time of day with seconds, e.g. "15:04:05" or
// "3:04:05 PM".
func TimeFull(t time.Time) string {
	return t.Format(clockLayout())
}

// Full renders date and time, e.g. "2024-01-23 15:04:05".
func Full(t time.Time) string {
	return t.Format(dateLayout() + " " + clockLayout())
}
