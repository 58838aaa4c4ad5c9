// Package docsearch is the Go client for the docsearch API.
//
// Client is a thin HTTP wrapper over the /search and /listing endpoints.
// Searcher sits on top of Client and implements the portal's input
// orchestration: keystrokes are debounced before a search fires, a longer
// debounce decides when a query is worth recording in the activity log,
// filter changes re-evaluate immediately, and responses that arrive after
// the input has already changed are dropped.
package docsearch
