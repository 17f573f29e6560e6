package fault

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifiersMatchWrappedErrors(t *testing.T) {
	ioErr := fmt.Errorf("reading export: %w", &IOError{Path: "bee.csv", Err: os.ErrNotExist})
	valErr := fmt.Errorf("load aborted: %w", &ValidationError{Section: "hitting", Row: 3, Column: "HR", Reason: "not a number"})
	stErr := fmt.Errorf("replace failed: %w", &StorageError{Path: "fantasy.duckdb", Err: errors.New("database is locked")})
	nfErr := fmt.Errorf("query failed: %w", &NotFoundError{Resource: "table hitters"})

	assert.True(t, IsIO(ioErr))
	assert.True(t, IsValidation(valErr))
	assert.True(t, IsStorage(stErr))
	assert.True(t, IsNotFound(nfErr))

	// Kinds are disjoint.
	assert.False(t, IsValidation(ioErr))
	assert.False(t, IsNotFound(stErr))
	assert.False(t, IsStorage(nfErr))
	assert.False(t, IsIO(valErr))
}

func TestIOErrorUnwrapsToCause(t *testing.T) {
	err := &IOError{Path: "missing.csv", Err: os.ErrNotExist}
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidationErrorMessageNamesTheCell(t *testing.T) {
	err := &ValidationError{Section: "pitching", Row: 7, Column: "ERA", Reason: `cannot parse "n/a"`}
	assert.Contains(t, err.Error(), "pitching")
	assert.Contains(t, err.Error(), "row 7")
	assert.Contains(t, err.Error(), `"ERA"`)
}
