package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/formula/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestExitCodeOf(t *testing.T) {
	err := zerr.With(zerr.Wrap(domain.ErrBuildFailure, "make exited with status 2"), domain.ExitCodeKey, 2)

	code, ok := domain.ExitCodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ExitStatus(2), code)
	assert.ErrorIs(t, err, domain.ErrBuildFailure)
}

func TestExitCodeOf_Wrapped(t *testing.T) {
	inner := zerr.With(zerr.Wrap(domain.ErrBuildFailure, "make exited with status 7"), domain.ExitCodeKey, 7)
	err := zerr.Wrap(inner, "install failed")

	code, ok := domain.ExitCodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ExitStatus(7), code)
}

func TestExitCodeOf_Missing(t *testing.T) {
	_, ok := domain.ExitCodeOf(errors.New("plain"))
	assert.False(t, ok)

	_, ok = domain.ExitCodeOf(nil)
	assert.False(t, ok)
}
