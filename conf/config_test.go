package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"lovebridge-gateway/conf"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cfg := conf.Default()
	require.NoError(cfg.Validate())
	require.Equal(5, cfg.Speech.RequestsPerMinute)
	require.EqualValues(50, cfg.Speech.RequestsPerDay)
	require.Equal(10, cfg.Translate.RequestsPerMinute)
	require.EqualValues(500, cfg.Translate.RequestsPerDay)
	require.Equal(500, cfg.Translate.MaxTextLength)
	require.NotEmpty(cfg.Heuristic.ShortPhrases)
	require.NotEmpty(cfg.Filter.DenyPatterns)
}

func TestReadOverridesDefaults(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte(`
[speech]
requests_per_minute = 2

[translate]
max_text_length = 100

[redis]
address = "localhost:6379"
`), 0o600)
	require.NoError(err)

	cfg, err := conf.Read(path)
	require.NoError(err)
	require.Equal(2, cfg.Speech.RequestsPerMinute)
	require.EqualValues(50, cfg.Speech.RequestsPerDay) // default kept
	require.Equal(100, cfg.Translate.MaxTextLength)
	require.NotNil(cfg.Redis)
	require.Equal("localhost:6379", cfg.Redis.Address)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cfg := conf.Default()
	cfg.Heuristic.LongLengthThreshold = cfg.Heuristic.MediumLengthThreshold
	require.Error(cfg.Validate())

	cfg = conf.Default()
	cfg.Redis = &conf.Redis{}
	require.Error(cfg.Validate())

	cfg = conf.Default()
	cfg.Logging.LogLevel = "verbose"
	require.Error(cfg.Validate())
}
