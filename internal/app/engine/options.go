package engine

// Options represents configuration options for the Engine.
type Options struct {
	// BufferSize is the number of placements queued before OnPlacement blocks.
	BufferSize int
}

// DefaultEngineOptions returns the default engine options.
func DefaultEngineOptions() *Options {
	return &Options{
		BufferSize: 1024,
	}
}
