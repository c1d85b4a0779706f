package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ourgreenway/scrape2tex"
	"github.com/ourgreenway/scrape2tex/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("parses all keys", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseConfig([]byte(`
header: Policy Brief
images: figures
out: brief.tex
timeout: 45s
documentClass: otherBrand
userAgent: test-agent/1.0
`))

		require.NoError(t, err)
		assert.Equal(t, &yaml.Config{
			Header:        "Policy Brief",
			Images:        "figures",
			Out:           "brief.tex",
			Timeout:       yaml.Duration(45 * time.Second),
			DocumentClass: "otherBrand",
			UserAgent:     "test-agent/1.0",
		}, cfg)
	})

	t.Run("leaves missing keys empty", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseConfig([]byte("header: Brief\n"))

		require.NoError(t, err)
		assert.Equal(t, "Brief", cfg.Header)
		assert.Empty(t, cfg.Out)
		assert.Zero(t, cfg.Timeout)
	})

	t.Run("accepts empty input", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseConfig(nil)

		require.NoError(t, err)
		assert.Equal(t, &yaml.Config{}, cfg)
	})

	errorTests := []struct {
		name string
		data string
	}{
		{name: "unknown key", data: "headr: Brief\n"},
		{name: "invalid duration", data: "timeout: soon\n"},
		{name: "negative duration", data: "timeout: -5s\n"},
		{name: "malformed document", data: "header: [unclosed\n"},
	}
	for _, tt := range errorTests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := yaml.ParseConfig([]byte(tt.data))

			require.Error(t, err)
			assert.Equal(t, scrape2tex.EINVALID, scrape2tex.ErrorCode(err))
		})
	}

	t.Run("rejects oversized input", func(t *testing.T) {
		t.Parallel()

		data := []byte("header: " + strings.Repeat("a", yaml.MaxConfigSize) + "\n")

		_, err := yaml.ParseConfig(data)

		assert.Equal(t, scrape2tex.EINVALID, scrape2tex.ErrorCode(err))
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "scrape2tex.yaml")
		require.NoError(t, os.WriteFile(path, []byte("out: report.tex\n"), 0644))

		cfg, err := yaml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "report.tex", cfg.Out)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, scrape2tex.EINVALID, scrape2tex.ErrorCode(err))
	})

	t.Run("requires path", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadConfig("")

		assert.Equal(t, scrape2tex.EINVALID, scrape2tex.ErrorCode(err))
	})
}
