package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucket_AllowsUpToCapacity(t *testing.T) {
	bucket := newTokenBucket(3, 0.0001) // effectively no refill during the test

	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())
}

func TestLimiter_EnforcesBurst(t *testing.T) {
	config := &Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/recommendations", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
		},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, info := limiter.Allow("client-a", "/recommendations", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 10, info.Limit)

	allowed, _ = limiter.Allow("client-a", "/recommendations", "POST")
	assert.True(t, allowed)

	allowed, info = limiter.Allow("client-a", "/recommendations", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))

	// Other clients are unaffected
	allowed, _ = limiter.Allow("client-b", "/recommendations", "POST")
	assert.True(t, allowed)
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client", "/score", "POST")
		require.True(t, allowed)
	}
}

func TestMatchEndpoint_ExactMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	match := MatchEndpoint("/score", "POST", configs)

	require.NotNil(t, match)
	assert.Equal(t, 300, match.Limit)
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	configs := DefaultEndpointConfigs()

	match := MatchEndpoint("/postings/123e4567-e89b-12d3-a456-426614174000", "PUT", configs)

	require.NotNil(t, match)
	assert.Equal(t, 100, match.Limit)
}

func TestMatchEndpoint_HealthIsUnlimited(t *testing.T) {
	match := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())

	require.NotNil(t, match)
	assert.Equal(t, 0, match.Limit)
}

func TestMatchEndpoint_NoMatch(t *testing.T) {
	match := MatchEndpoint("/postings", "GET", DefaultEndpointConfigs())

	assert.Nil(t, match)
}

func TestLoadConfig_Defaults(t *testing.T) {
	config := LoadConfig()

	assert.True(t, config.Enabled)
	assert.Equal(t, 1000, config.DefaultLimit)
	assert.NotEmpty(t, config.EndpointConfigs)
}
