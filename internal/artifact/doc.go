// Package artifact finds build artifacts for a target in a directory, picks
// the newest one and derives its numeric build version from the file name.
package artifact
