package cffi

// Version is the wrapper version populated at build time via ldflags. In
// development it defaults to v0.0.0-in-progress.
var Version = "v0.0.0-in-progress"
