// Package platform wraps filesystem operations that differ across operating
// systems. On Unix it uses native symlinks and chmod. On Windows, where
// creating symlinks needs developer mode, a link falls back to a copy of the
// target plus a .target sidecar recording what the link points at.
package platform
