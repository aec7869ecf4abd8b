package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errMigration = New("schema is dirty")

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "apply migrations"))

	err := Wrap(errMigration, "apply migrations")
	assert.EqualError(t, err, "apply migrations: schema is dirty")
	assert.True(t, Is(err, errMigration))
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap")
}

func TestWrapf(t *testing.T) {
	err := Wrapf(errMigration, "version %d", 4)

	assert.EqualError(t, err, "version 4: schema is dirty")
	assert.True(t, Is(err, errMigration))
}

func TestWithStack_KeepsMessage(t *testing.T) {
	err := WithStack(errMigration)

	assert.EqualError(t, err, "schema is dirty")
	assert.True(t, Is(err, errMigration))
	assert.NoError(t, WithStack(nil))
}

func TestErrorf(t *testing.T) {
	err := Errorf("schema version %d is dirty", 3)

	assert.EqualError(t, err, "schema version 3 is dirty")
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestErrorf")
}
