// Package config loads the optional .husky/husky.toml file.
//
// The hook directory layout is fixed and not configurable; the only
// settings are the two strings rendered into the provenance header:
//
//	[header]
//	version = "1.4.0"
//	homepage = "https://example.com/my-project"
//
// Both default to the binary's build-time values when the file or a
// field is absent. A missing file is not an error, an unparsable one is.
package config
