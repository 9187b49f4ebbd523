package version

// Version is the current plugin version. Overridden at build time with
// -ldflags "-X github.com/birmacher/empathetic-code-reviewer/version.Version=..."
var Version = "0.1.0"
