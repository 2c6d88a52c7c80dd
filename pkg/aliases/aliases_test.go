package aliases_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/prism/pkg/aliases"
	"github.com/arthur-debert/prism/pkg/errors"
	"github.com/arthur-debert/prism/pkg/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndResolve(t *testing.T) {
	r := aliases.NewRegistry()

	require.NoError(t, r.Register("#", "purple,i"))

	style, ok := r.Resolve("#")
	require.True(t, ok)
	assert.Equal(t, styles.Style{Color: styles.ColorMagenta, Italic: true}, style)

	_, ok = r.Resolve("@")
	assert.False(t, ok)
}

func TestRegisterIdempotence(t *testing.T) {
	r := aliases.NewRegistry()

	require.NoError(t, r.Register("x", "red,bold"))
	first, _ := r.Resolve("x")

	require.NoError(t, r.Register("x", "red,bold"))
	second, _ := r.Resolve("x")
	assert.Equal(t, first, second)
}

func TestRegisterLastWriteWins(t *testing.T) {
	r := aliases.NewRegistry()

	require.NoError(t, r.Register("x", "red"))
	require.NoError(t, r.Register("x", "blue,underline"))

	style, ok := r.Resolve("x")
	require.True(t, ok)
	assert.Equal(t, styles.Style{Color: styles.ColorBlue, Underline: true}, style)
}

func TestRegisterInvalidSpec(t *testing.T) {
	r := aliases.NewRegistry()
	require.NoError(t, r.Register("x", "green"))

	tests := []struct {
		name string
		spec string
	}{
		{"unknown name", "sparkly"},
		{"two colors", "red,blue"},
		{"empty spec", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.Register("x", tt.spec)
			require.Error(t, err)
			assert.Equal(t, errors.ErrInvalidToken, errors.GetErrorCode(err))

			// the failed registration must not disturb the prior one
			style, ok := r.Resolve("x")
			require.True(t, ok)
			assert.Equal(t, styles.Style{Color: styles.ColorGreen}, style)
		})
	}
}

func TestRegisterEmptyToken(t *testing.T) {
	r := aliases.NewRegistry()
	err := r.Register("  ", "red")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidToken, errors.GetErrorCode(err))
}

func TestLoadPresets(t *testing.T) {
	r := aliases.NewRegistry()
	data := []byte("warn: orange,b\nnote: 'gray,i'\n")

	require.NoError(t, r.LoadPresets(data))

	warn, ok := r.Resolve("warn")
	require.True(t, ok)
	assert.Equal(t, styles.Style{Color: styles.ColorYellow, Bold: true}, warn)

	assert.Equal(t, []string{"note", "warn"}, r.Tokens())
}

func TestLoadPresetsInvalid(t *testing.T) {
	r := aliases.NewRegistry()
	err := r.LoadPresets([]byte("not: [valid: yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(err))
}

func TestDefaultRegistryHasPresets(t *testing.T) {
	style, ok := aliases.Resolve("ok")
	require.True(t, ok)
	assert.Equal(t, styles.Style{Color: styles.ColorGreen, Bold: true}, style)
}

func TestConcurrentRegisterAndResolve(t *testing.T) {
	r := aliases.NewRegistry()
	require.NoError(t, r.Register("z", "cyan"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = r.Register(fmt.Sprintf("t%d", i), "yellow,bold")
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				// a reader must only ever see a complete entry
				if style, ok := r.Resolve("z"); ok {
					assert.Equal(t, styles.Style{Color: styles.ColorCyan}, style)
				}
			}
		}()
	}
	wg.Wait()
}
