package timespan

// Unit weights in microseconds. All span arithmetic reduces to these.
const (
	Microsecond int64 = 1
	Millisecond       = 1000 * Microsecond
	Second            = 1000 * Millisecond
	Minute            = 60 * Second
	Hour              = 60 * Minute
	Day               = 24 * Hour
	Week              = 7 * Day
)

// unit indexes the canonical components, largest first.
type unit int

const (
	unitWeeks unit = iota
	unitDays
	unitHours
	unitMinutes
	unitSeconds
	unitMilliseconds
	unitMicroseconds
	numUnits
)

// unitWeight maps each canonical component to its microsecond weight.
var unitWeight = [numUnits]int64{Week, Day, Hour, Minute, Second, Millisecond, Microsecond}

// unitName maps each canonical component to its plural English name.
var unitName = [numUnits]string{
	"weeks", "days", "hours", "minutes", "seconds", "milliseconds", "microseconds",
}

// unitByName resolves a component name as used in vocabulary files.
func unitByName(name string) (unit, bool) {
	for u, n := range unitName {
		if n == name {
			return unit(u), true
		}
	}
	return 0, false
}
