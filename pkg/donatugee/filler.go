package donatugee

import (
	"context"
	"strconv"
)

// RandomText fetches one paragraph of gibberish of the given length from the
// filler-text service. It does not use the base endpoint.
func (c *Client) RandomText(ctx context.Context, length int) Result {
	return c.fetch(ctx, OpRandomText, c.fillerText+strconv.Itoa(length))
}
