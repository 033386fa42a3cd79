package stage

import "fmt"

// accumulate records a recoverable failure on the envelope and reports it on
// the console with the offending command.
func accumulate(env *Envelope, deps Deps, stageName, command string, err error) {
	env.Errors = append(env.Errors, Error{Stage: stageName, Command: command, Message: err.Error()})
	if command != "" {
		fmt.Fprintf(deps.Err, "%s: error running %q: %v\n", stageName, command, err)
		return
	}
	fmt.Fprintf(deps.Err, "%s: %v\n", stageName, err)
}
