// Package report renders result rows for the operator.
//
// Three writers share the Writer interface: a terminal table with OSC 8
// clickable permalinks (default), a Markdown table, and a JSON document for
// tool integration. The tabular writers sort rows by date, channel, and
// user, then blank repeated leading values for visual grouping.
package report
