package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	it, err := Lookup("mouse-away")
	require.NoError(t, err)
	assert.Equal(t, "MouseAway", it.Name)
	assert.NotEmpty(t, it.Description)

	_, err = Lookup("use-nothing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "use-nothing")
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	all[0].Name = "changed"

	it, err := Lookup(all[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", it.Name)
}
