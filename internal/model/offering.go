package model

// Offering is a row of the timetable table.
type Offering struct {
	Code                  string  `db:"code" json:"code"`
	Term                  *string `db:"term" json:"term"`
	Name                  *string `db:"name" json:"name"`
	Section               *string `db:"section" json:"section"`
	Waitlist              *string `db:"waitlist" json:"waitlist"`
	Time                  *string `db:"time" json:"time"`
	Location              *string `db:"location" json:"location"`
	Instructor            *string `db:"instructor" json:"instructor"`
	EnrollmentCode        *string `db:"EnrollmentCode" json:"EnrollmentCode"`
	EnrollmentControlLink *string `db:"EnrollmentControlLink" json:"EnrollmentControlLink"`
}
