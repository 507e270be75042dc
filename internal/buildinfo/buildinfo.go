// Package buildinfo carries the release stamp shown in the window title and
// the startup log line. Both values are set with -ldflags -X at release time.
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
)

// Short returns the version when one was stamped, otherwise the abbreviated
// commit, otherwise "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case len(Commit) > 7 && Commit != "unknown":
		return Commit[:7]
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}
