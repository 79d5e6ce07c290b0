package donatugee

import "context"

// CreateTechfugeeProfile registers an applicant. Skills are sent as JSON text.
func (c *Client) CreateTechfugeeProfile(ctx context.Context, p TechfugeeProfile) Result {
	q := newQuery().
		str("name", p.Name).
		str("email", p.Email).
		jsonList("skills", p.Skills)
	return c.get(ctx, PathInsertTechfugee, q)
}

// AddSkills replaces the skill list of an applicant.
func (c *Client) AddSkills(ctx context.Context, u SkillsUpdate) Result {
	q := newQuery().
		jsonList("skills", u.Skills).
		id("id", u.ID)
	return c.get(ctx, PathAddSkills, q)
}

// Techfugee fetches an applicant by id.
func (c *Client) Techfugee(ctx context.Context, id uint) Result {
	return c.get(ctx, PathTechfugee, newQuery().id("id", id))
}

// UpdateTechfugeeDetails sets city and introduction of an applicant.
func (c *Client) UpdateTechfugeeDetails(ctx context.Context, d TechfugeeDetails) Result {
	q := newQuery().
		id("id", d.ID).
		str("city", d.City).
		str("introduction", d.Introduction)
	return c.get(ctx, PathUpdateTechfugee, q)
}

// UpdateAuth records whether an applicant passed authentication.
func (c *Client) UpdateAuth(ctx context.Context, s AuthStatus) Result {
	q := newQuery().
		id("id", s.ID).
		boolean("passed", s.Passed)
	return c.get(ctx, PathUpdateAuth, q)
}
