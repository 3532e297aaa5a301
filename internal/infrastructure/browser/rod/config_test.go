package rod

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.Headless)
	assert.Equal(t, defaultSlowMotion, int(cfg.SlowMotion))
	assert.Equal(t, defaultTimeout, cfg.Timeout)
	assert.False(t, cfg.NoSandbox, "Should be secure by default")
	assert.False(t, cfg.DevTools)
	assert.Empty(t, cfg.Bin)
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{"HTTP", "http://localhost:8080/form", true},
		{"HTTPS", "https://example.com", true},
		{"File", "file:///tmp/form.html", true},
		{"Empty URL", "", false},
		{"Invalid scheme", "ftp://example.com", false},
		{"JavaScript URL", "javascript:alert(1)", false},
		{"Missing host", "http://", false},
		{"Relative", "form.html", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURL(tt.url)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidURL)
		})
	}
}
