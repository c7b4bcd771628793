package jobfile

import "fmt"

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// JobDate is a timestamp sub-record from a job file. The wire layout places
// a weekday word between month and day; the run-date variant carries it, the
// scheduled-date variant skips those two bytes. Values are decoded as-is
// with no range validation.
type JobDate struct {
	Year       uint16
	Month      uint16
	Weekday    uint16
	HasWeekday bool
	Day        uint16
	Hour       uint16
	Minute     uint16
	Second     uint16
}

// DecodeJobDate reads a timestamp sub-record from data. Field offsets are
// fixed in both variants: year@0, month@2, weekday@4, day@6, hour@8,
// minute@10, second@12; when hasWeekday is false the weekday word is
// skipped, not shifted over. 14 bytes are required either way.
func DecodeJobDate(data []byte, hasWeekday bool) (JobDate, error) {
	c := newCursor(data)
	d := JobDate{HasWeekday: hasWeekday}
	var err error
	if d.Year, err = c.uint16(); err != nil {
		return JobDate{}, err
	}
	if d.Month, err = c.uint16(); err != nil {
		return JobDate{}, err
	}
	if hasWeekday {
		if d.Weekday, err = c.uint16(); err != nil {
			return JobDate{}, err
		}
	}
	c.seek(6)
	if d.Day, err = c.uint16(); err != nil {
		return JobDate{}, err
	}
	if d.Hour, err = c.uint16(); err != nil {
		return JobDate{}, err
	}
	if d.Minute, err = c.uint16(); err != nil {
		return JobDate{}, err
	}
	if d.Second, err = c.uint16(); err != nil {
		return JobDate{}, err
	}
	return d, nil
}

// String renders the locale-style form "Weekday Mon D HH:MM:SS YYYY", with
// the weekday token omitted for the scheduled-date variant. A month or
// weekday outside its name table renders as the raw number rather than
// faulting.
func (d JobDate) String() string {
	month := fmt.Sprintf("%d", d.Month)
	if d.Month >= 1 && d.Month <= 12 {
		month = monthNames[d.Month-1]
	}
	if d.HasWeekday {
		weekday := fmt.Sprintf("%d", d.Weekday)
		if d.Weekday < 7 {
			weekday = weekdayNames[d.Weekday]
		}
		return fmt.Sprintf("%s %s %d %02d:%02d:%02d %d",
			weekday, month, d.Day, d.Hour, d.Minute, d.Second, d.Year)
	}
	return fmt.Sprintf("%s %d %02d:%02d:%02d %d",
		month, d.Day, d.Hour, d.Minute, d.Second, d.Year)
}
