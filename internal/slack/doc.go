// Package slack talks to the Slack search API.
//
// It provides three things: the query string builder (BuildQuery), a thin
// HTTP client that pages through search.messages results (Client), and raw
// match accessors driven by gjson path expressions (Match). The client is a
// transport; shaping and filtering of results belongs to the pipeline.
package slack
