package types

// Version is overwritten at build time via -ldflags.
var Version = "dev"
