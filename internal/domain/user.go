package domain

// User birth details as registered. Calendar fields are kept as the caller sent them.
type User struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Place    string `json:"place" db:"place"`
	Time     string `json:"time" db:"time"` // HH:MM
	Day      string `json:"day" db:"day"`
	Month    string `json:"month" db:"month"`
	Year     string `json:"year" db:"year"`
	Timezone string `json:"timezone" db:"timezone"` // +05:30
}

// BirthDetails is the user-supplied part of a User.
type BirthDetails struct {
	Name     string
	Place    string
	Time     string
	Day      string
	Month    string
	Year     string
	Timezone string
}

// TimeSpec returns the composite time segment used by the chart API:
// time/day/month/year/timezone.
func (u *User) TimeSpec() string {
	return u.Time + "/" + u.Day + "/" + u.Month + "/" + u.Year + "/" + u.Timezone
}
