package configuration

// Configuration is what bootstrap needs to build a logger and load a
// database. Binaries fill it from their own flags.
type Configuration struct {
	Dir      string
	LogLevel string // DEBUG | INFO | WARN | ERROR
	NoColor  bool
	Verbose  bool // trace every insert, update and remove
	Strict   bool // fail on corrupt lines instead of stopping the read
}

func Default() *Configuration {
	return &Configuration{
		Dir:      "data",
		LogLevel: "INFO",
	}
}
