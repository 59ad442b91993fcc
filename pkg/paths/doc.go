// Package paths provides centralized path handling for diffmask.
//
// Portage files live under a configuration root (PORTAGE_CONFIGROOT,
// "/" by default); diffmask's own configuration and logs follow the XDG
// Base Directory specification.
package paths
