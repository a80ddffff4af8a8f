package popdb

// Version is populated at build time via ldflags.
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the version of this Go module.
func WrapperVersion() string {
	return Version
}
