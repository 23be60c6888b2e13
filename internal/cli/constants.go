package cli

// Default values for CLI flags and output.
const (
	// DefaultGeneration is the manifest generation listed by default.
	DefaultGeneration = 2
	// TabWidth is the width of tabs in formatted output.
	TabWidth = 2
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
)
