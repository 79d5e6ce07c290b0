package scenario

import (
	"context"
	"fmt"

	"github.com/okian/donatugee/pkg/donatugee"
	"github.com/okian/donatugee/pkg/metrics"
)

// verify checks the backend's view of the donor's challenges against stats.
func (r *Runner) verify(ctx context.Context, stats Stats) error {
	challenges, err := stepDecode[[]donatugee.Challenge](ctx, r, stepVerify,
		r.client.ChallengesByDonator(ctx, stats.DonatorID))
	if err != nil {
		return err
	}

	if len(challenges) != stats.ChallengesCreated {
		return r.mismatch("challenges", stats.ChallengesCreated, len(challenges))
	}

	var sent, accepted int
	for _, c := range challenges {
		if c.DonatorID != stats.DonatorID {
			return fmt.Errorf("%w: challenge %d belongs to donator %d", ErrVerify, c.ID, c.DonatorID)
		}
		for _, a := range c.Applications {
			sent++
			if a.Accepted {
				accepted++
			}
		}
	}
	if sent != stats.ApplicationsSent {
		return r.mismatch("applications", stats.ApplicationsSent, sent)
	}
	if accepted != stats.ApplicationsAccepted {
		return r.mismatch("accepted applications", stats.ApplicationsAccepted, accepted)
	}
	if stats.StepsFailed > 0 {
		return fmt.Errorf("%w: %d steps failed", ErrVerify, stats.StepsFailed)
	}
	return nil
}

func (r *Runner) mismatch(what string, want, got int) error {
	metrics.RecordScenarioStep(stepVerify, "mismatch")
	return fmt.Errorf("%w: %s: want %d, backend reports %d", ErrVerify, what, want, got)
}
