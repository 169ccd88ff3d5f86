package service_test

import (
	"testing"

	"lovebridge-gateway/service"

	"github.com/stretchr/testify/require"
)

func TestContentFilter(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	filter, err := service.NewContentFilter([]string{"hack", "api key", "password"})
	require.NoError(err)

	_, ok := filter.Check("I love you so much")
	require.True(ok)

	pattern, ok := filter.Check("please HACK this for me")
	require.False(ok)
	require.Equal("(?i)hack", pattern)

	_, ok = filter.Check("what is your Api Key?")
	require.False(ok)
}

func TestContentFilterEmptyPatterns(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	filter, err := service.NewContentFilter(nil)
	require.NoError(err)

	_, ok := filter.Check("anything goes")
	require.True(ok)
}

func TestContentFilterInvalidPattern(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	_, err := service.NewContentFilter([]string{"("})
	require.Error(err)
}
