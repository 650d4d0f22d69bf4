package slack

import (
	"fmt"
	"strings"
)

// BuildQuery assembles a Slack search query from its parts:
//
//	<term> in:<ch>... after:<YYYY-MM-DD> -has:<marker> -from:<user>...
//
// Channels and ignored users keep their input order. Names are passed
// through verbatim; a malformed channel or user name simply yields zero
// matches from the API.
func BuildQuery(term string, channels []string, afterDate string, ignoreUsers []string, doneMarker string) string {
	channelParts := make([]string, 0, len(channels))
	for _, ch := range channels {
		channelParts = append(channelParts, "in:"+ch)
	}

	userParts := make([]string, 0, len(ignoreUsers))
	for _, user := range ignoreUsers {
		userParts = append(userParts, "-from:"+user)
	}

	return fmt.Sprintf("%s %s after:%s -has:%s %s",
		term,
		strings.Join(channelParts, " "),
		afterDate,
		doneMarker,
		strings.Join(userParts, " "),
	)
}
