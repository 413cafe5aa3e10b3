package driven

// Prompter obtains credential fields interactively. It is the last provider
// in the resolution chain, consulted only for fields that neither explicit
// arguments nor the vault supplied.
type Prompter interface {
	// ReadString prompts for a plain value. When defaultValue is non-empty
	// it is displayed and returned on empty input. An abandoned prompt
	// (end of input) returns an error.
	ReadString(prompt, defaultValue string) (string, error)

	// ReadSecret prompts for a value without echoing it. There is no
	// default; empty input is returned as-is for the caller to reject.
	ReadSecret(prompt string) (string, error)
}
