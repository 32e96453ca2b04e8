//go:build darwin

package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDarwinProvidersRegistered(t *testing.T) {
	names := make([]string, 0)
	for _, p := range Providers() {
		names = append(names, p.Info().Name)
	}
	assert.Equal(t, []string{"quartz", "robotgo"}, names)

	p, err := Detect()
	require.NoError(t, err)
	assert.Equal(t, "quartz", p.Info().Name)
	assert.True(t, p.Info().UsesKeyCode)
}

func TestQuartzInjector_CloseIsIdempotent(t *testing.T) {
	inj, err := NewQuartzProvider().NewInjector()
	require.NoError(t, err)

	assert.Equal(t, "quartz", inj.Name())
	assert.NoError(t, inj.Close())
	assert.NoError(t, inj.Close())
}
