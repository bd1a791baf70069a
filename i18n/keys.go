package i18n

// Message keys. Values are the English defaults in locales/en-US.yaml.
const (
	KeyExactSingular   = "cramer.exact.singular"
	KeyExactDimensions = "cramer.exact.dimensions"
	KeyNonSquare       = "cramer.numeric.non_square"
	KeyNumericSingular = "cramer.numeric.singular"
	KeyInvalidInput    = "cramer.invalid_input" // takes one %v argument
	KeySolutionFound   = "cramer.solution_found"
)
