package errors_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/blockimg/internal/errors"
)

var errKind = stderrors.New(`kind`)

func TestMark(t *testing.T) {
	cause := stderrors.New(`cause`)
	err := errors.Mark(errKind, cause)
	assert.ErrorIs(t, err, errKind)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `kind: cause`, err.Error())

	// marking twice doesn't repeat the kind
	assert.Equal(t, `kind: cause`, errors.Mark(errKind, err).Error())
	assert.NoError(t, errors.Mark(errKind, nil))
}

func TestNew(t *testing.T) {
	assert.Nil(t, errors.New(nil))
	err := errors.New(`boom`)
	assert.Same(t, err, errors.New(err))
	assert.Contains(t, err.ErrorStack(), `TestNew`)
}

func TestNil(t *testing.T) {
	err := errors.NilParam()
	if err == nil {
		t.Fatal(`expected error`)
	}
	assert.True(t, strings.HasPrefix(err.Error(), `nil parameter`))
	assert.NoError(t, errors.NilParam(1, `a`))
	assert.Error(t, errors.NilReceiver(nil))
}

func TestJoin(t *testing.T) {
	assert.NoError(t, errors.Join(nil, nil))
	err := errors.Join(errKind, nil)
	assert.ErrorIs(t, err, errKind)
}
