// Package manifest reads, validates and rewrites the update.json release
// manifest. The document is kept as a generic JSON tree so fields outside
// build.last and urls survive a read-modify-write cycle untouched; numbers
// are kept as json.Number to avoid float reformatting.
//
// Writes always copy the current file to update.json.bak first.
package manifest
