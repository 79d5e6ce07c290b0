package donatugee

import "context"

// Challenges lists every challenge.
func (c *Client) Challenges(ctx context.Context) Result {
	return c.get(ctx, PathChallenges, nil)
}

// Challenge fetches a challenge by id.
func (c *Client) Challenge(ctx context.Context, id uint) Result {
	return c.get(ctx, PathChallenge, newQuery().id("id", id))
}

// ChallengesByDonator lists the challenges a donor posted, with applications.
func (c *Client) ChallengesByDonator(ctx context.Context, donatorID uint) Result {
	return c.get(ctx, PathChallengesByDonator, newQuery().id("id", donatorID))
}

// CreateChallenge posts a challenge for a donor.
func (c *Client) CreateChallenge(ctx context.Context, ch NewChallenge) Result {
	q := newQuery().
		id("id_donator", ch.DonatorID).
		str("name", ch.Name).
		str("description", ch.Description).
		str("duration", ch.Duration).
		str("laptop_type", ch.LaptopType).
		id("amount", ch.Amount).
		str("hardware_provided", ch.HardwareProvided)
	return c.get(ctx, PathInsertChallenge, q)
}
