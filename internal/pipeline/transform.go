package pipeline

import (
	"fmt"
	"regexp"
)

// blankLines matches a run of one or more blank or whitespace-only lines.
var blankLines = regexp.MustCompile(`\n\s*\n`)

// collapseBlankLines squeezes runs of blank lines down to a single newline
// so multi-line Slack messages stay compact in table cells.
func collapseBlankLines(s string) string {
	return blankLines.ReplaceAllString(s, "\n")
}

// extractSubstring replaces s with the first capture group of re. When the
// pattern does not match, or carries no capture group, the original text is
// kept and the failure reason appended inline: the operator should see the
// raw message plus why extraction failed, not lose the row.
func extractSubstring(re *regexp.Regexp, s string) string {
	groups := re.FindStringSubmatch(s)
	var reason string
	switch {
	case groups == nil:
		reason = "pattern did not match"
	case len(groups) < 2:
		reason = "pattern has no capture group"
	default:
		return groups[1]
	}
	return fmt.Sprintf("%s (unable to extract 1st group of regex %s Reason: %s)", s, re.String(), reason)
}
