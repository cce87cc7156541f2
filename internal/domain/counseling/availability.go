package counseling

// Slot is one bookable hour in a counselor's day.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// DateLayout is the wire and storage format for appointment dates.
const DateLayout = "2006-01-02"
