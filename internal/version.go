package internal

// Version is the current release of define.
const Version = "0.3.0"
