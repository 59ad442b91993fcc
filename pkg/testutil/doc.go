// Package testutil provides utilities for testing diffmask components.
//
// Key components:
//   - TestEnvironment: an in-memory portage configuration root with a
//     loaded diffmask configuration
//   - Repo and Profile helpers that lay out repositories, repos.conf
//     entries and profile trees declaratively
//
// All test data should be defined inline, not in external files.
package testutil
