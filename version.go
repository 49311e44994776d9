package sqlapply

// Version is the semantic version of sqlapply, surfaced by the CLI.
var Version = "v0.1.0"

// GitCommit is the short commit hash, set at build time via -ldflags.
var GitCommit = "dev"
