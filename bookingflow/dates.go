package bookingflow

import "time"

// AvailableTimes is the fixed daily slot enumeration offered at the
// date/time step.
var AvailableTimes = []string{
	"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00", "18:00",
}

const dateLayout = "2006-01-02"

type DateOption struct {
	Date  string `json:"date"`
	Day   string `json:"day"`
	Num   int    `json:"num"`
	Month string `json:"month"`
}

// AvailableDates returns the rolling 7-day booking window starting at
// now's calendar date.
func AvailableDates(now time.Time) []DateOption {
	dates := make([]DateOption, 0, 7)
	for i := 0; i < 7; i++ {
		d := now.AddDate(0, 0, i)
		dates = append(dates, DateOption{
			Date:  d.Format(dateLayout),
			Day:   d.Format("Mon"),
			Num:   d.Day(),
			Month: d.Format("Jan"),
		})
	}
	return dates
}

func isBookableDate(now time.Time, date string) bool {
	for _, d := range AvailableDates(now) {
		if d.Date == date {
			return true
		}
	}
	return false
}

func isBookableTime(t string) bool {
	for _, slot := range AvailableTimes {
		if slot == t {
			return true
		}
	}
	return false
}
