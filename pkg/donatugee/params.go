package donatugee

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// DonatorProfile is the input of CreateDonatorProfile.
type DonatorProfile struct {
	Name  string
	Email string
}

// TechfugeeProfile is the input of CreateTechfugeeProfile. A nil Skills list
// is sent as an empty JSON array.
type TechfugeeProfile struct {
	Name   string
	Email  string
	Skills []string
}

// SkillsUpdate is the input of AddSkills. Skills replaces the stored list.
type SkillsUpdate struct {
	ID     uint
	Skills []string
}

// TechfugeeDetails is the input of UpdateTechfugeeDetails.
type TechfugeeDetails struct {
	ID           uint
	City         string
	Introduction string
}

// AuthStatus is the input of UpdateAuth.
type AuthStatus struct {
	ID     uint
	Passed bool
}

// CompanyProfile is the input of CreateCompanyProfile. The backend expects the
// password in the query string.
type CompanyProfile struct {
	Name     string
	Email    string
	Password string
	Website  string
	Address  string
}

// NewChallenge is the input of CreateChallenge.
type NewChallenge struct {
	DonatorID        uint
	Name             string
	Description      string
	Duration         string
	LaptopType       string
	Amount           uint
	HardwareProvided string
}

// query accumulates query parameters. Encoding sorts them by key; the
// backend reads them by name, so order carries no meaning.
type query struct {
	values url.Values
	err    error
}

func newQuery() *query {
	return &query{values: url.Values{}}
}

func (q *query) str(key, val string) *query {
	q.values.Set(key, val)
	return q
}

func (q *query) id(key string, val uint) *query {
	q.values.Set(key, strconv.FormatUint(uint64(val), 10))
	return q
}

func (q *query) boolean(key string, val bool) *query {
	q.values.Set(key, strconv.FormatBool(val))
	return q
}

// jsonList stores the JSON text of list. nil encodes as [].
func (q *query) jsonList(key string, list []string) *query {
	if list == nil {
		list = []string{}
	}
	raw, err := json.Marshal(list)
	if err != nil && q.err == nil {
		q.err = err
	}
	q.values.Set(key, string(raw))
	return q
}

func (q *query) build() (url.Values, error) {
	return q.values, q.err
}

func decodeSkills(raw string) []string {
	var skills []string
	if raw == "" {
		return []string{}
	}
	if err := json.Unmarshal([]byte(raw), &skills); err != nil || skills == nil {
		return []string{}
	}
	return skills
}
