package introspectable

// Options configures a Resolver.
type Options struct {
	// Limits
	MaxDepth int // Max nesting depth of a single description (default: 64)

	// Behavior flags
	EnableCache       bool   // If true, memoize descriptors per type (default: true)
	IncludeUnexported bool   // If true, unexported struct fields are described (default: false)
	TagName           string // Struct tag consulted for field renames and skips (default: "introspect")

	// Logging configuration
	LogLevel string // Log level: "error", "warn", "info", "debug"; empty disables logging (default: "")
	Logger   Logger // Overrides LogLevel when set
}

// DefaultOptions returns the default resolver configuration.
func DefaultOptions() Options {
	return Options{
		MaxDepth:          64,
		EnableCache:       true,
		IncludeUnexported: false,
		TagName:           "introspect",
		LogLevel:          "",
		Logger:            nil,
	}
}

// normalize fills unset limits with their defaults.
func (o Options) normalize() Options {
	def := DefaultOptions()
	if o.MaxDepth <= 0 {
		o.MaxDepth = def.MaxDepth
	}
	if o.TagName == "" {
		o.TagName = def.TagName
	}
	return o
}

func (o Options) logger() Logger {
	if o.Logger != nil {
		return o.Logger
	}
	if o.LogLevel != "" {
		return NewLogger(ParseLogLevel(o.LogLevel), nil)
	}
	return newNoopLogger()
}
