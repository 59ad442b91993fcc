// Package config loads the diffmask configuration with koanf. Layers, from
// lowest to highest precedence:
//
//  1. embedded/defaults.toml
//  2. the user file ($XDG_CONFIG_HOME/diffmask/config.toml)
//  3. DIFFMASK_* environment variables, one per known key
//  4. overrides passed by the caller, usually command line flags
package config
