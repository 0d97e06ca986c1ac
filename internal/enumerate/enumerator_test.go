package enumerate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollaboratorError(t *testing.T) {
	cause := errors.New("exit status 1")

	err := &CollaboratorError{Stage: "du", Stderr: "du: cannot access 'x'\n", Err: cause}

	assert.Equal(t,
		"du: cannot access 'x'\nlrgest encountered an unexpected error. Terminating program.",
		err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestCollaboratorError_NoStderr(t *testing.T) {
	err := &CollaboratorError{Stage: "tac", Err: errors.New("executable file not found")}

	assert.Contains(t, err.Error(), "tac: executable file not found")
	assert.Contains(t, err.Error(), "Terminating program.")
}
