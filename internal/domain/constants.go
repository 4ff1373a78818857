package domain

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// Planning horizon and day bounds used by the generator.
const (
	HorizonDays  = 7
	DayEndMinute = 22 * 60
)
