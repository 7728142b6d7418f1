package models

// FlagOptions are the per-action flags shared by every request command.
// They are built once before a session is created and not changed afterwards.
type FlagOptions struct {
	// Silent disables the progress indicator and all request logs.
	Silent bool
	// PromptUser allows interactive confirmation before destructive requests.
	PromptUser bool
	// WriteFile is the output file path; empty means print to stdout.
	WriteFile string
	// Format is the response rendering format.
	Format Format
}
