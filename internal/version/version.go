package version

// Version is stamped here rather than via ldflags so `go install` builds
// still report something useful.
const Version = "0.1.0"
