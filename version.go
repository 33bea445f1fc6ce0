package depenlang

// Version of the DepenLang interpreter.
var Version = "0.2.0"

// BuildDate may be overridden at link time with -ldflags.
var BuildDate = "unknown"
