package report

// HealthTier buckets a budget's consumption into display tiers.
type HealthTier int

const (
	TierUnused HealthTier = iota
	TierOnTrack
	TierCaution
	TierWarning
	TierExceeded
)

// Health is a classified budget consumption level with its display label.
type Health struct {
	Tier  HealthTier
	Label string
}

var healthLabels = map[HealthTier]string{
	TierUnused:   "Unused",
	TierOnTrack:  "On Track",
	TierCaution:  "Caution",
	TierWarning:  "Warning",
	TierExceeded: "Exceeded",
}

func (t HealthTier) String() string {
	return healthLabels[t]
}

// ClassifyHealth thresholds spent/amount*100 into tiers:
//
//	<= 0%        Unused
//	(0, 50)%     On Track
//	[50, 90)%    Caution
//	[90, 100]%   Warning
//	> 100%       Exceeded
//
// A budget amount of zero (or below) skips the division entirely: nothing
// spent is Unused, anything spent is Exceeded.
func ClassifyHealth(spent, amount float64) Health {
	tier := classify(spent, amount)
	return Health{Tier: tier, Label: tier.String()}
}

func classify(spent, amount float64) HealthTier {
	if amount <= 0 {
		if spent <= 0 {
			return TierUnused
		}
		return TierExceeded
	}
	percentage := spent / amount * 100
	switch {
	case percentage <= 0:
		return TierUnused
	case percentage < 50:
		return TierOnTrack
	case percentage < 90:
		return TierCaution
	case percentage <= 100:
		return TierWarning
	default:
		return TierExceeded
	}
}
