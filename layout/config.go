package layout

// Config aggregates the tunable heuristics for the whole pipeline.
type Config struct {
	// Line holds line aggregation configuration
	Line LineConfig

	// Heading holds profiling, title and classification configuration
	Heading HeadingConfig
}

// DefaultConfig returns sensible default configuration for all stages
func DefaultConfig() Config {
	return Config{
		Line:    DefaultLineConfig(),
		Heading: DefaultHeadingConfig(),
	}
}
