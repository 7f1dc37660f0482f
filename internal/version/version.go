package version

// Build metadata, overridable via -ldflags at release time.
var (
	AppName        = "Herald"
	AppDescription = "A prefix-command Discord bot with typed arguments, filters and permission gates."
	BuildDate      = ""
	GoVersion      = ""
)
