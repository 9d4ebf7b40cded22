package analytics

// TimeOfDay buckets an hour of day into one of four greeting ranges.
type TimeOfDay int

const (
	Night     TimeOfDay = iota // [0, 6)
	Morning                    // [6, 12)
	Afternoon                  // [12, 18)
	Evening                    // [18, 24)
)

// greetings keeps display text out of the aggregation logic; swapping the
// locale means swapping this table.
var greetings = map[TimeOfDay]string{
	Morning:   "Good morning!",
	Afternoon: "Good afternoon!",
	Evening:   "Good evening!",
	Night:     "Good night!",
}

// BucketForHour maps an hour of day (0-23) to its TimeOfDay bucket.
func BucketForHour(hour int) TimeOfDay {
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	case hour >= 18 && hour < 24:
		return Evening
	default:
		return Night
	}
}

// Greeting returns the canonical greeting for an hour of day.
func Greeting(hour int) string {
	return greetings[BucketForHour(hour)]
}
