package version

import "fmt"

// Name is the binary name shown in version output.
const Name = "mdtoc"

// Set at build time via -ldflags "-X".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
