// Package misc keeps build time program identification.
package misc

// Set with -ldflags "-X gridkit/misc.version=... -X gridkit/misc.githash=...".
var (
	version = "dev"
	githash = "unknown"
	appName = "gridkit"
)

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return githash
}

func GetAppName() string {
	return appName
}
