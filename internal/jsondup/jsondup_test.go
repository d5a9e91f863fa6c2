package jsondup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_NoDuplicates(t *testing.T) {
	require.NoError(t, Find([]byte(`{"a":1,"b":{"a":2},"c":[{"a":1},{"a":2}]}`)))
}

func TestFind_RootDuplicate(t *testing.T) {
	err := Find([]byte(`{"a":1,"a":2}`))
	var de *Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "", de.Path)
	assert.Equal(t, "a", de.Key)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, `duplicate key "a"`, err.Error())
}

func TestFind_NestedPath(t *testing.T) {
	err := Find([]byte(`{"user":{"tags":["x","y"],"pets":[{"name":"a"},{"name":"b","name":"c"}]}}`))
	var de *Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "user.pets.1", de.Path)
	assert.Equal(t, "name", de.Key)
}

func TestFind_StringValuesAreNotKeys(t *testing.T) {
	require.NoError(t, Find([]byte(`{"a":"b","b":"a"}`)))
}

func TestFind_SyntaxError(t *testing.T) {
	err := Find([]byte(`{"a":`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDuplicateKey))
}
