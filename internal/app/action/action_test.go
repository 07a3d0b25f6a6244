package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/ChatSync/internal/domain"
)

func TestTypesAreUnique(t *testing.T) {
	seen := make(map[Type]Action)
	for _, a := range All() {
		prev, dup := seen[a.Type()]
		require.Falsef(t, dup, "type %q shared by %T and %T", a.Type(), prev, a)
		seen[a.Type()] = a
	}
}

func TestEveryUseCaseIsATriple(t *testing.T) {
	var requests, failures, other int
	for _, a := range All() {
		_, isReq := a.(Request)
		_, isFail := a.(Failure)
		require.False(t, isReq && isFail, "%T is both request and failure", a)
		switch {
		case isReq:
			requests++
		case isFail:
			failures++
		default:
			other++
		}
	}

	assert.Equal(t, 8, requests)
	assert.Equal(t, 8, failures)
	// successes plus Init
	assert.Equal(t, 9, other)
}

func TestFailureCarriesError(t *testing.T) {
	err := domain.Error{Message: "not found"}
	tests := []Failure{
		RegisterFailure{Error: err},
		GetCurrentUserFailure{Error: err},
		UpdateCurrentUserFailure{Error: err},
		GetUserByIDFailure{Error: err},
		BlockUserFailure{Error: err},
		GetRoomFailure{Error: err},
		GetRoomByIDFailure{Error: err},
		CreateRoomFailure{Error: err},
	}
	for _, f := range tests {
		t.Run(string(f.Type()), func(t *testing.T) {
			assert.Equal(t, err, f.Err())
		})
	}
}

func TestRegistration(t *testing.T) {
	a := Register{Name: "alice", Email: "a@example.com", Password: "secret123"}
	assert.Equal(t, domain.Registration{Name: "alice", Email: "a@example.com", Password: "secret123"}, a.Registration())
}
