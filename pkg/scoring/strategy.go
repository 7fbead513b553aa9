package scoring

import (
	"github.com/creditscope/creditscope/pkg/profile"
)

// Strategy is the interface all scoring strategies implement. A strategy is
// a pure function of the profile: no shared state, safe for concurrent use.
type Strategy interface {
	// Name returns the machine-readable strategy identifier.
	Name() string
	// CalculateScore maps a profile to a raw score in [0,100].
	CalculateScore(p *profile.FinancialProfile) int
}
