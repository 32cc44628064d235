package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"listing": map[string]any{
			"sweepInterval": "1m",
		},
		"export": map[string]any{
			"bucketUrl": "mem://",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "LISTING_SWEEPINTERVAL", want: "listing.sweepInterval"},
		{envKey: "EXPORT_BUCKETURL", want: "export.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Listing)
	assert.Equal(t, time.Minute, cfg.Listing.SweepInterval)
	assert.Equal(t, 100, cfg.Listing.SweepBatch)
	assert.Equal(t, 20, cfg.Listing.SearchDefaultLimit)
	assert.Equal(t, 100, cfg.Listing.SearchMaxLimit)
	assert.Equal(t, "jwt", cfg.Identity.Provider)
	assert.Equal(t, "noop", cfg.PubSub.Provider)
	assert.Equal(t, "mem://", cfg.Export.BucketURL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 5*time.Minute, cfg.Redis.StatsTTL)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Listing: &ListingConfig{SweepInterval: 30 * time.Second, SearchDefaultLimit: 50, SearchMaxLimit: 10},
		PubSub:  &PubSubConfig{Provider: "google"},
	}

	applyDefaults(cfg)

	assert.Equal(t, 30*time.Second, cfg.Listing.SweepInterval)
	assert.Equal(t, 50, cfg.Listing.SearchDefaultLimit)
	assert.Equal(t, 50, cfg.Listing.SearchMaxLimit)
	assert.Equal(t, "google", cfg.PubSub.Provider)
}
