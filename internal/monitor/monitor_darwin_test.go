//go:build darwin

package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DarwinSources(t *testing.T) {
	for _, name := range Names() {
		src, err := New(name)
		require.NoError(t, err)
		assert.Equal(t, name, src.Name())
	}
}
