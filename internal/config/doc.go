// Package config loads settings for the mentions tool.
//
// Settings are layered. Defaults come first, then an optional TOML file,
// then environment variables prefixed with MENTIONS_. Command line flags are
// applied last by the caller. Each source is read into a map and merged over
// the previous one before the result is decoded into a Config and
// validated.
//
// A config file looks like:
//
//	trigger = "@"
//	directory = "people.toml"
//	diff_timeout = "0s"
//	watch = false
//
//	[log]
//	level = "info"
//	format = "text"
package config
