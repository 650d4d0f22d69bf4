package model

// DateLayout is the calendar-day format used for match dates.
// Slack timestamps are floored to the day in UTC before formatting.
const DateLayout = "2006-01-02"

// Record is one normalized match from the Slack search API, produced by the
// fetch stage and consumed immediately by the filter stage.
type Record struct {
	// Date is the message date as YYYY-MM-DD (UTC).
	Date string

	// Channel is the channel name the message was posted in.
	Channel string

	// User is the name of the message author.
	User string

	// Permalink is the canonical URL of the message.
	Permalink string

	// Field is the value selected from the raw match by the search
	// definition's path expression.
	Field string
}

// Row is one result that survived filtering, ready for rendering.
// Rows from all enabled search definitions are concatenated, in config
// order, before the report stage runs.
type Row struct {
	Date      string `json:"date"`
	Channel   string `json:"channel"`
	User      string `json:"user"`
	Message   string `json:"message"`
	Permalink string `json:"permalink"`

	// Type is the name of the search definition that produced the row.
	Type string `json:"type"`
}
