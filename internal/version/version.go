package version

// Version is overridden at build time with -ldflags "-X abrank/internal/version.Version=...".
var Version = "dev"
