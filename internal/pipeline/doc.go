// Package pipeline runs the search definitions against the Slack API and
// shapes the raw matches into result rows.
//
// Execution is strictly sequential: definitions run in config order, each
// match flows through normalize, filter, and transform before landing in
// the single accumulating row slice. There is no shared state beyond that
// slice and no concurrency.
package pipeline
