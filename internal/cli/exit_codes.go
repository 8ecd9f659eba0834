package cli

// Exit codes for the relkit CLI. The pipeline treats anything non-zero
// as a blocking failure, so there are only two outcomes.
const (
	// ExitSuccess indicates success, including graceful no-ops.
	ExitSuccess = 0

	// ExitFailure indicates a fatal validation failure, an unknown
	// subcommand, or a constraint violation after a version computation.
	ExitFailure = 1
)
