package domain

// NotSpecified is the sentinel for optional fields missing from the source
// markup. Emitted jobs never carry empty strings for these fields.
const NotSpecified = "Not specified"

// Job represents a normalized job listing from any source.
// JSON field names are part of the API contract.
type Job struct {
	Title      string `json:"jobTitle"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Experience string `json:"experience"`
	ApplyLink  string `json:"applyLink"`
	Platform   string `json:"platform"`
}

// Source identifies a job board.
type Source string

const (
	SourceNaukri    Source = "Naukri"
	SourceShine     Source = "Shine"
	SourceTimesJobs Source = "TimesJobs"
)
