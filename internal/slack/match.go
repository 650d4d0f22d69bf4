package slack

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// ErrFieldNotFound is returned when a path expression resolves to nothing
// in a raw match. This aborts the run: a definition whose field selector
// never matches is an operator error, not a skippable record.
var ErrFieldNotFound = errors.New("field path matched nothing")

// Match is the raw JSON of one search result. The known metadata fields
// have typed accessors; the message payload is selected via Field with a
// configurable path expression, because its location varies between plain
// messages, bot attachments, and blocks.
type Match []byte

// Timestamp returns the message time in UTC, parsed from the "ts" field
// (Unix seconds with a fractional part, e.g. "1672531200.000100").
func (m Match) Timestamp() (time.Time, error) {
	ts := gjson.GetBytes(m, "ts")
	if !ts.Exists() {
		return time.Time{}, fmt.Errorf("%w: %q", ErrFieldNotFound, "ts")
	}
	sec, err := strconv.ParseFloat(ts.String(), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse ts %q: %w", ts.String(), err)
	}
	return time.Unix(int64(sec), 0).UTC(), nil
}

// ChannelName returns the name of the channel the message was posted in.
func (m Match) ChannelName() string {
	return gjson.GetBytes(m, "channel.name").String()
}

// Username returns the display name of the message author.
func (m Match) Username() string {
	return gjson.GetBytes(m, "username").String()
}

// Permalink returns the canonical URL of the message.
func (m Match) Permalink() string {
	return gjson.GetBytes(m, "permalink").String()
}

// Field resolves a gjson path expression (dotted/bracket access, e.g.
// "text" or "attachments.0.fallback") against the raw match. When the path
// yields an array, the first element is taken. A path that matches nothing
// returns ErrFieldNotFound.
func (m Match) Field(path string) (string, error) {
	v := gjson.GetBytes(m, path)
	if !v.Exists() {
		return "", fmt.Errorf("%w: %q", ErrFieldNotFound, path)
	}
	if v.IsArray() {
		arr := v.Array()
		if len(arr) == 0 {
			return "", fmt.Errorf("%w: %q", ErrFieldNotFound, path)
		}
		v = arr[0]
	}
	return v.String(), nil
}
