package models

// AlertSeverity is the display level of an action alert.
type AlertSeverity string

const (
	SeveritySage  AlertSeverity = "sage"
	SeverityAmber AlertSeverity = "amber"
	SeverityRed   AlertSeverity = "red"
)

// ActionAlert is a derived, never persisted, regulatory prompt. Lower priority
// values are shown first.
type ActionAlert struct {
	ID       string        `json:"id"`
	Severity AlertSeverity `json:"severity"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Priority int           `json:"priority"`
}

// RiskLine is the exposure attributed to one compliance dimension.
type RiskLine struct {
	Label   string `json:"label"`
	MaxFine int64  `json:"max_fine"`
	Note    string `json:"note"`
}

// RiskReport aggregates monetary exposure. AllClear is true only when no
// tracked dimension has a miss, in which case Lines is empty.
type RiskReport struct {
	AllClear bool       `json:"all_clear"`
	Lines    []RiskLine `json:"lines"`
	Total    int64      `json:"total"`
}
