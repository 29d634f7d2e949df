// Package tickreport turns the revision history of a set of ticker files
// into price movement reports. It is designed to run as a single-pass batch
// job, typically from a CI pipeline, against a local history source.
//
// The core functionalities include:
//   - Snapshot Access: reading the content of every tracked ticker file as it
//     existed at a given revision, from a git repository or from an
//     append-only snapshot log.
//   - Field Parsing: extracting a price and an update timestamp from the
//     loosely formatted ticker files, on a best-effort basis that never
//     fails the run.
//   - Change Calculation: absolute and percentage change between two
//     observations, with a defined zero-baseline rule.
//   - History Aggregation: chronological price series and derived statistics
//     (current, previous, min, max, average) over the sampled revisions.
//   - Report Building: ranked diff reports over the two newest revisions and
//     overview reports over a configurable sample of recent revisions.
//
// This package serves as the foundational logic for the `tkr` command-line
// tool; rendering of the text, HTML and markdown artifacts lives in the
// renderer subpackage.
package tickreport
