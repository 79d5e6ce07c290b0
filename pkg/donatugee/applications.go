package donatugee

import "context"

// ApplicationsByTechfugee lists the challenges an applicant applied to.
func (c *Client) ApplicationsByTechfugee(ctx context.Context, techfugeeID uint) Result {
	return c.get(ctx, PathApplicationByTechfugee, newQuery().id("id", techfugeeID))
}

// SubmitApplication applies an applicant to a challenge.
func (c *Client) SubmitApplication(ctx context.Context, challengeID, techfugeeID uint) Result {
	q := newQuery().
		id("challenge_id", challengeID).
		id("techfugee_id", techfugeeID)
	return c.get(ctx, PathInsertApplication, q)
}

// AcceptApplication marks an application as accepted.
func (c *Client) AcceptApplication(ctx context.Context, applicationID uint) Result {
	return c.get(ctx, PathAcceptApplication, newQuery().id("id", applicationID))
}
