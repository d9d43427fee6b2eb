package wageengine

// ComputeChainContributions assigns each minute of a chain to a wage tier
// via the chain-cumulative minute index `m` (spec §4.5). Segments are split
// at Sabbath boundaries first; a single segment can straddle two tiers and
// therefore emit two contributions.
func ComputeChainContributions(chain Chain, snap ReferenceSnapshot) []ChainContribution {
	m := chain.CarriedInMinutes
	var contributions []ChainContribution
	for _, seg := range chain.Segments {
		for _, piece := range SplitAtSabbathBoundaries(seg, snap) {
			m = emitTieredContributions(&contributions, m, piece.Minutes(), isSabbathSlice(piece, snap))
		}
	}
	return contributions
}

// tierForM returns the tier in effect at chain-cumulative minute m, and the
// exclusive upper bound of that tier's bucket (-1 for the open-ended top
// tier).
func tierForM(m int, sabbath bool) (Tier, int) {
	switch {
	case m < RegularHoursLimit:
		if sabbath {
			return Tier150Shabbat, RegularHoursLimit
		}
		return Tier100, RegularHoursLimit
	case m < Overtime125Limit:
		if sabbath {
			return Tier175, Overtime125Limit
		}
		return Tier125, Overtime125Limit
	default:
		if sabbath {
			return Tier200, -1
		}
		return Tier150Overtime, -1
	}
}

// emitTieredContributions walks `minutes` forward from chain-cumulative
// index m, splitting at tier boundaries as needed, and returns m advanced
// by minutes.
func emitTieredContributions(out *[]ChainContribution, m, minutes int, sabbath bool) int {
	remaining := minutes
	for remaining > 0 {
		tier, limit := tierForM(m, sabbath)
		step := remaining
		if limit >= 0 && limit-m < step {
			step = limit - m
		}
		if step <= 0 {
			step = remaining
		}
		appendContribution(out, tier, step)
		m += step
		remaining -= step
	}
	return m
}

func appendContribution(out *[]ChainContribution, tier Tier, minutes int) {
	if minutes <= 0 {
		return
	}
	if n := len(*out); n > 0 && (*out)[n-1].Tier == tier {
		(*out)[n-1].Minutes += minutes
		return
	}
	*out = append(*out, ChainContribution{Tier: tier, Minutes: minutes})
}
