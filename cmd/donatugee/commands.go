package main

import (
	"context"
	"flag"
	"strings"

	"github.com/okian/donatugee/pkg/donatugee"
)

// call issues one operation with the parsed flags.
type call func(ctx context.Context, c *donatugee.Client) donatugee.Result

// command binds its flags to fs and returns the call to run after parsing.
type command struct {
	name    string
	summary string
	bind    func(fs *flag.FlagSet) call
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func idCommand(name, summary string, op func(*donatugee.Client, context.Context, uint) donatugee.Result) command {
	return command{name: name, summary: summary, bind: func(fs *flag.FlagSet) call {
		id := fs.Uint("id", 0, "record id")
		return func(ctx context.Context, c *donatugee.Client) donatugee.Result { return op(c, ctx, *id) }
	}}
}

var commands = []command{
	{name: donatugee.PathInsertDonator, summary: "register a donor", bind: func(fs *flag.FlagSet) call {
		name := fs.String("name", "", "donor name")
		email := fs.String("email", "", "donor email")
		return func(ctx context.Context, c *donatugee.Client) donatugee.Result {
			return c.CreateDonatorProfile(ctx, donatugee.DonatorProfile{Name: *name, Email: *email})
		}
	}},
	{name: "insert-company", summary: "register a company donor", bind: func(fs *flag.FlagSet) call {
		var p donatugee.CompanyProfile
		fs.StringVar(&p.Name, "name", "", "company name")
		fs.StringVar(&p.Email, "email", "", "company email")
		fs.StringVar(&p.Password, "password", "", "account password")
		fs.StringVar(&p.Website, "website", "", "company website")
		fs.StringVar(&p.Address, "address", "", "postal address")
		return func(ctx context.Context, c *donatugee.Client) donatugee.Result {
			return c.CreateCompanyProfile(ctx, p)
		}
	}},
	{name: donatugee.PathLoginDonator, summary: "look a donor up by email", bind: func(fs *flag.FlagSet) call {
		email := fs.String("email", "", "donor email")
		return func(ctx context.Context, c *donatugee.Client) donatugee.Result { return c.LoginDonator(ctx, *email) }
	}},
	idCommand(donatugee.PathDonator, "fetch a donor", (*donatugee.Client).Donator),

	{name: donatugee.PathInsertTechfugee, summary: "register a techfugee", bind: func(fs *flag.FlagSet) call {
		name := fs.String("name", "", "techfugee name")
		email := fs.String("email", "", "techfugee email")
		skills := fs.String("skills", "", "comma-separated skills")
		return func(ctx context.Context, c *donatugee.Client) donatugee.Result {
			return c.CreateTechfugeeProfile(ctx, donatugee.TechfugeeProfile{Name: *name, Email: *email, Skills: splitList(*skills)})
		}
	}},
	{name: donatugee.PathAddSkills, summary: "replace a techfugee's skills", bind: func(fs *flag.FlagSet) call {
		id := fs.Uint("id", 0, "techfugee id")
		skills := fs.String("skills", "", "comma-separated skills")
		return func(ctx context.Context, c *donatugee.Client) donatugee.Result {
			return c.AddSkills(ctx, donatugee.SkillsUpdate{ID: *id, Skills: splitList(*skills)})
		}
	}},
	idCommand(donatugee.PathTechfugee, "fetch a techfugee", (*donatugee.Client).Techfugee),
	{name: donatugee.PathUpdateTechfugee, summary: "set city and introduction", bind: func(fs *flag.FlagSet) call {
		var d donatugee.TechfugeeDetails
		fs.UintVar(&d.ID, "id", 0, "techfugee id")
		fs.StringVar(&d.City, "city", "", "city")
		fs.StringVar(&d.Introduction, "introduction", "", "introduction text")
		return func(ctx context.Context, c *donatugee.Client) donatugee.Result { return c.UpdateTechfugeeDetails(ctx, d) }
	}},
	{name: donatugee.PathUpdateAuth, summary: "record an authentication result", bind: func(fs *flag.FlagSet) call {
		var s donatugee.AuthStatus
		fs.UintVar(&s.ID, "id", 0, "techfugee id")
		fs.BoolVar(&s.Passed, "passed", false, "whether authentication passed")
		return func(ctx context.Context, c *donatugee.Client) donatugee.Result { return c.UpdateAuth(ctx, s) }
	}},

	{name: donatugee.PathChallenges, summary: "list all challenges", bind: func(*flag.FlagSet) call {
		return func(ctx context.Context, c *donatugee.Client) donatugee.Result { return c.Challenges(ctx) }
	}},
	idCommand(donatugee.PathChallenge, "fetch a challenge", (*donatugee.Client).Challenge),
	idCommand(donatugee.PathChallengesByDonator, "list a donor's challenges", (*donatugee.Client).ChallengesByDonator),
	{name: donatugee.PathInsertChallenge, summary: "post a challenge", bind: func(fs *flag.FlagSet) call {
		var ch donatugee.NewChallenge
		fs.UintVar(&ch.DonatorID, "donator", 0, "donor id")
		fs.StringVar(&ch.Name, "name", "", "challenge name")
		fs.StringVar(&ch.Description, "description", "", "description")
		fs.StringVar(&ch.Duration, "duration", "", "duration, free text")
		fs.StringVar(&ch.LaptopType, "laptop-type", "", "laptop type")
		fs.UintVar(&ch.Amount, "amount", 0, "number of laptops")
		fs.StringVar(&ch.HardwareProvided, "hardware", "", "hardware provided")
		return func(ctx context.Context, c *donatugee.Client) donatugee.Result { return c.CreateChallenge(ctx, ch) }
	}},

	idCommand(donatugee.PathApplicationByTechfugee, "list a techfugee's applications", (*donatugee.Client).ApplicationsByTechfugee),
	{name: donatugee.PathInsertApplication, summary: "apply to a challenge", bind: func(fs *flag.FlagSet) call {
		challenge := fs.Uint("challenge", 0, "challenge id")
		techfugee := fs.Uint("techfugee", 0, "techfugee id")
		return func(ctx context.Context, c *donatugee.Client) donatugee.Result {
			return c.SubmitApplication(ctx, *challenge, *techfugee)
		}
	}},
	idCommand(donatugee.PathAcceptApplication, "accept an application", (*donatugee.Client).AcceptApplication),

	{name: donatugee.OpRandomText, summary: "fetch filler text", bind: func(fs *flag.FlagSet) call {
		length := fs.Int("length", 25, "number of words")
		return func(ctx context.Context, c *donatugee.Client) donatugee.Result { return c.RandomText(ctx, *length) }
	}},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}
