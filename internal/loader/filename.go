package loader

import "path/filepath"

// DefaultBase is the base name of the popdb shared library.
const DefaultBase = "popdb"

// ResolveFilename returns the path of the shared library called base inside
// dir, following the naming convention of goos: libpopdb.so on linux,
// libpopdb.dylib on darwin, popdb.dll on windows. Unlisted platforms use the
// ELF convention.
func ResolveFilename(goos, dir, base string) string {
	prefix, ext := "lib", ".so"
	switch goos {
	case "windows":
		prefix, ext = "", ".dll"
	case "darwin", "ios":
		ext = ".dylib"
	}
	name := prefix + base + ext
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
