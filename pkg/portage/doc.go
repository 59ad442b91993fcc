// Package portage discovers the package repositories and the profile
// stack whose package.mask files diffmask merges.
//
// Repositories come from an Enumerator: repos.conf, layman's installed.xml,
// a static list from the diffmask configuration, or a Chain of those. The
// profile stack is resolved from the make.profile link and the parent
// files of each profile directory.
package portage
