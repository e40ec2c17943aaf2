package version

import (
	"runtime/debug"
	"strings"

	"golang.org/x/mod/module"
)

// Version is set at link time by release builds:
//
//	go build -ldflags "-X github.com/cidroy-tech/create-adonis-starter/internal/version.Version=v1.2.3"
var Version = ""

const devel = "(devel)"

// String reports the release version, or "(devel)" for local and dirty builds.
func String() string {
	if Version != "" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return devel
	}
	return fromModule(info.Main.Version)
}

func fromModule(version string) string {
	if version == "" || version == devel {
		return devel
	}
	if strings.Contains(version, "+dirty") || module.IsPseudoVersion(version) {
		return devel
	}
	return version
}
