// Package target defines the closed set of release platforms and CPU
// architectures. Each platform carries its artifact file suffix and whether
// it publishes a download URL in the manifest; both live in one table so a
// new platform cannot be half-registered.
package target
