// Package donatugee is a client for the donatugee REST backend.
//
// Every operation issues exactly one GET request against the base endpoint
// (or, for RandomText, the filler-text service) with its parameters in the
// query string, and reports the outcome as a Result. Operations never return
// a Go error: a non-2xx reply is an OutcomeErrorResponse carrying the full
// response, and a call that produced no response at all is an
// OutcomeTransportFailure carrying the cause.
//
//	c, err := donatugee.New(donatugee.DefaultBaseURL)
//	if err != nil {
//		return err
//	}
//	res := c.Challenge(ctx, 7)
//	if err := res.Error(); err != nil {
//		return err
//	}
//	ch, err := donatugee.DecodeAs[donatugee.Challenge](res)
package donatugee
