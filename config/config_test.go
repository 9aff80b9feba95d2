package config

import (
	"testing"

	"github.com/researchaccelerator-hub/channel-scout/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaCoercion(t *testing.T) {
	tests := []struct {
		name      string
		subMin    string
		subMax    string
		maxPages  int
		wantMin   int64
		wantMax   int64
		wantPages int
		wantTotal int
	}{
		{
			name:      "numeric bounds pass through",
			subMin:    "2000",
			subMax:    "5000",
			maxPages:  10,
			wantMin:   2000,
			wantMax:   5000,
			wantPages: 10,
			wantTotal: 500,
		},
		{
			name:      "non-numeric bounds fall back to defaults",
			subMin:    "abc",
			subMax:    "",
			maxPages:  10,
			wantMin:   0,
			wantMax:   1_000_000,
			wantPages: 10,
			wantTotal: 500,
		},
		{
			name:      "negative minimum clamped to zero",
			subMin:    "-5",
			subMax:    "5000",
			maxPages:  10,
			wantMin:   0,
			wantMax:   5000,
			wantPages: 10,
			wantTotal: 500,
		},
		{
			name:      "zero maximum clamped to one",
			subMin:    "0",
			subMax:    "0",
			maxPages:  10,
			wantMin:   0,
			wantMax:   1,
			wantPages: 10,
			wantTotal: 500,
		},
		{
			name:      "page count clamped to ceiling",
			subMin:    "0",
			subMax:    "5000",
			maxPages:  99,
			wantMin:   0,
			wantMax:   5000,
			wantPages: 10,
			wantTotal: 500,
		},
		{
			name:      "page count clamped to floor",
			subMin:    "0",
			subMax:    "5000",
			maxPages:  0,
			wantMin:   0,
			wantMax:   5000,
			wantPages: 1,
			wantTotal: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ScanConfig{
				Keyword:    "cooking",
				SubMinText: tt.subMin,
				SubMaxText: tt.subMax,
				MaxPages:   tt.maxPages,
				Order:      model.OrderRelevance,
			}

			criteria := cfg.Criteria()
			assert.Equal(t, tt.wantMin, criteria.SubMin)
			assert.Equal(t, tt.wantMax, criteria.SubMax)
			assert.Equal(t, tt.wantPages, criteria.MaxPages)
			assert.Equal(t, tt.wantTotal, criteria.MaxResults)
		})
	}
}

func TestScanConfigValidate(t *testing.T) {
	base := func() *ScanConfig {
		cfg := DefaultScanConfig()
		cfg.APIKey = "test-key"
		cfg.Keyword = "cooking"
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, base().Validate())
	})

	t.Run("missing API key", func(t *testing.T) {
		cfg := base()
		cfg.APIKey = ""
		assert.ErrorContains(t, cfg.Validate(), "API key")
	})

	t.Run("missing keyword", func(t *testing.T) {
		cfg := base()
		cfg.Keyword = ""
		assert.ErrorContains(t, cfg.Validate(), "keyword")
	})

	t.Run("inverted range rejected before any transport call", func(t *testing.T) {
		cfg := base()
		cfg.SubMinText = "9000"
		cfg.SubMaxText = "5000"
		assert.ErrorContains(t, cfg.Validate(), "exceeds maximum")
	})

	t.Run("empty output path", func(t *testing.T) {
		cfg := base()
		cfg.OutputPath = ""
		assert.ErrorContains(t, cfg.Validate(), "output path")
	})

	t.Run("zero probe depth", func(t *testing.T) {
		cfg := base()
		cfg.ProbeDepth = 0
		assert.ErrorContains(t, cfg.Validate(), "probe_depth")
	})

	t.Run("bad order", func(t *testing.T) {
		cfg := base()
		cfg.Order = "alphabetical"
		assert.ErrorContains(t, cfg.Validate(), "invalid order")
	})
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "env-key-123")
	assert.Equal(t, "env-key-123", APIKeyFromEnv())
}
