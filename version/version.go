package version

import (
	"fmt"
	"runtime/debug"
)

// Version is the SDK release version. Overridable at build time with
// -ldflags "-X github.com/jewelmusic/jewelmusic-go/version.Version=...".
var Version = "1.0.0"

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
}

// Get returns version information, filling in VCS details from the build
// info when available.
func Get() Info {
	info := Info{Version: Version}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			if setting.Key == "vcs.revision" {
				info.GitCommit = setting.Value
				if len(info.GitCommit) > 7 {
					info.GitCommit = info.GitCommit[:7]
				}
			}
		}
	}

	return info
}

// UserAgent returns the default User-Agent header value.
func UserAgent() string {
	return fmt.Sprintf("JewelMusic-Go-SDK/%s", Version)
}

// String returns a short version string.
func (i Info) String() string {
	if i.GitCommit != "" {
		return fmt.Sprintf("%s-%s", i.Version, i.GitCommit)
	}
	return i.Version
}
