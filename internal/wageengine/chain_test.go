package wageengine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolga/wagecalc/internal/wageengine"
)

func sunday() time.Time { return time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC) }

func TestComputeChainContributions_SingleTierWithinRegularLimit(t *testing.T) {
	chain := wageengine.Chain{
		WorkDay: sunday(),
		Segments: []wageengine.Segment{
			{Kind: wageengine.SegmentWork, Date: sunday(), StartMinute: 480, EndMinute: 600},
		},
	}
	contributions := wageengine.ComputeChainContributions(chain, wageengine.ReferenceSnapshot{})
	require.Len(t, contributions, 1)
	assert.Equal(t, wageengine.Tier100, contributions[0].Tier)
	assert.Equal(t, 120, contributions[0].Minutes)
}

func TestComputeChainContributions_StraddlesRegularAndOvertimeTiers(t *testing.T) {
	chain := wageengine.Chain{
		WorkDay: sunday(),
		Segments: []wageengine.Segment{
			{Kind: wageengine.SegmentWork, Date: sunday(), StartMinute: 0, EndMinute: 500},
		},
	}
	contributions := wageengine.ComputeChainContributions(chain, wageengine.ReferenceSnapshot{})
	require.Len(t, contributions, 2)
	assert.Equal(t, wageengine.Tier100, contributions[0].Tier)
	assert.Equal(t, 480, contributions[0].Minutes)
	assert.Equal(t, wageengine.Tier125, contributions[1].Tier)
	assert.Equal(t, 20, contributions[1].Minutes)
}

func TestComputeChainContributions_ThreeTiersInOneChain(t *testing.T) {
	chain := wageengine.Chain{
		WorkDay: sunday(),
		Segments: []wageengine.Segment{
			{Kind: wageengine.SegmentWork, Date: sunday(), StartMinute: 0, EndMinute: 650},
		},
	}
	contributions := wageengine.ComputeChainContributions(chain, wageengine.ReferenceSnapshot{})
	require.Len(t, contributions, 3)
	assert.Equal(t, wageengine.Tier100, contributions[0].Tier)
	assert.Equal(t, 480, contributions[0].Minutes)
	assert.Equal(t, wageengine.Tier125, contributions[1].Tier)
	assert.Equal(t, 120, contributions[1].Minutes)
	assert.Equal(t, wageengine.Tier150Overtime, contributions[2].Tier)
	assert.Equal(t, 50, contributions[2].Minutes)
}

func TestComputeChainContributions_CarriedInMinutesShiftTierBoundary(t *testing.T) {
	chain := wageengine.Chain{
		WorkDay:          sunday(),
		CarriedInMinutes: 470,
		Segments: []wageengine.Segment{
			{Kind: wageengine.SegmentWork, Date: sunday(), StartMinute: 0, EndMinute: 60},
		},
	}
	contributions := wageengine.ComputeChainContributions(chain, wageengine.ReferenceSnapshot{})
	require.Len(t, contributions, 2)
	assert.Equal(t, wageengine.Tier100, contributions[0].Tier)
	assert.Equal(t, 10, contributions[0].Minutes) // 470 -> 480
	assert.Equal(t, wageengine.Tier125, contributions[1].Tier)
	assert.Equal(t, 50, contributions[1].Minutes)
}

func TestComputeChainContributions_SabbathUsesShabbatTiers(t *testing.T) {
	friday := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	chain := wageengine.Chain{
		WorkDay: friday,
		Segments: []wageengine.Segment{
			{Kind: wageengine.SegmentWork, Date: friday, StartMinute: 900, EndMinute: 1020},
		},
	}
	contributions := wageengine.ComputeChainContributions(chain, wageengine.ReferenceSnapshot{})
	require.Len(t, contributions, 2)
	assert.Equal(t, wageengine.Tier100, contributions[0].Tier) // before Sabbath entry (960)
	assert.Equal(t, 60, contributions[0].Minutes)
	assert.Equal(t, wageengine.Tier150Shabbat, contributions[1].Tier)
	assert.Equal(t, 60, contributions[1].Minutes)
}
