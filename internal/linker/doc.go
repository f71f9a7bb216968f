// Package linker keeps the latest.<suffix> symlink in an artifact directory
// pointing at the newest artifact. Links store only the artifact's file
// name, so they stay valid when the directory is moved or synced.
package linker
