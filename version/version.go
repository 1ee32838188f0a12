package version

import (
	"fmt"
	"io"
	"runtime/debug"
)

// Set by -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

const module = "github.com/dendrascience/setupver"

// Info describes the running build.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Module  string `json:"module"`
}

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetInfo resolves build information, preferring link-time values.
func GetInfo() Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		Module:  module,
	}

	bi, ok := readBuildInfo()
	if !ok {
		if info.Version == "dev" {
			info.Version = "development"
		}
		return info
	}

	if info.Version == "dev" || info.Version == "" {
		info.Version = "development"
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" || info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" || info.Date == "" {
				info.Date = s.Value
			}
		}
	}

	return info
}

// GetFullVersion returns the version with a short commit and build date when known.
func GetFullVersion() string {
	info := GetInfo()
	if info.Commit == "unknown" || len(info.Commit) <= 7 {
		return info.Version
	}

	short := info.Commit[:7]
	if info.Date != "unknown" {
		return fmt.Sprintf("%s (%s, built %s)", info.Version, short, info.Date)
	}
	return fmt.Sprintf("%s (%s)", info.Version, short)
}

// Fprint writes human readable build information to w.
func Fprint(w io.Writer, appName string) error {
	info := GetInfo()
	_, err := fmt.Fprintf(w, "%s version %s\nModule: %s\nCommit: %s\nBuild Date: %s\n",
		appName, GetFullVersion(), info.Module, info.Commit, info.Date)
	return err
}
