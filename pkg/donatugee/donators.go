package donatugee

import "context"

// CreateDonatorProfile registers a donor with name and email.
func (c *Client) CreateDonatorProfile(ctx context.Context, p DonatorProfile) Result {
	q := newQuery().
		str("name", p.Name).
		str("email", p.Email)
	return c.get(ctx, PathInsertDonator, q)
}

// CreateCompanyProfile registers a company donor. It shares the
// insert-donator path with CreateDonatorProfile and adds password, website
// and address.
func (c *Client) CreateCompanyProfile(ctx context.Context, p CompanyProfile) Result {
	q := newQuery().
		str("name", p.Name).
		str("email", p.Email).
		str("password", p.Password).
		str("website", p.Website).
		str("address", p.Address)
	return c.get(ctx, PathInsertDonator, q)
}

// LoginDonator looks a donor up by email.
func (c *Client) LoginDonator(ctx context.Context, email string) Result {
	return c.get(ctx, PathLoginDonator, newQuery().str("email", email))
}

// Donator fetches a donor by id.
func (c *Client) Donator(ctx context.Context, id uint) Result {
	return c.get(ctx, PathDonator, newQuery().id("id", id))
}
