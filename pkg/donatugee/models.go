package donatugee

import "time"

// Model holds the bookkeeping fields every backend record carries.
type Model struct {
	ID        uint       `json:"ID"`
	CreatedAt time.Time  `json:"CreatedAt"`
	UpdatedAt time.Time  `json:"UpdatedAt"`
	DeletedAt *time.Time `json:"DeletedAt"`
}

// Techfugee is an applicant profile.
type Techfugee struct {
	Model
	Applications []Application `json:"Applications"`
	Name         string        `json:"Name"`
	Email        string        `json:"Email"`
	// Skills is the JSON array text the profile was saved with.
	Skills        string `json:"Skills"`
	City          string `json:"City"`
	Introduction  string `json:"Introduction"`
	Authenticated string `json:"Authenticated"`
}

// Donator is a donor or company profile.
type Donator struct {
	Model
	Challenges []Challenge `json:"Challenges"`
	Name       string      `json:"Name"`
	Website    string      `json:"Website"`
	Email      string      `json:"Email"`
	Address    string      `json:"Address"`
}

// Challenge is a laptop challenge posted by a donator.
type Challenge struct {
	Model
	ChallengeID      uint          `json:"ChallengeID"`
	DonatorID        uint          `json:"DonatorID"`
	Applications     []Application `json:"Applications"`
	Name             string        `json:"Name"`
	Description      string        `json:"Description"`
	LaptopType       string        `json:"LaptopType"`
	Amount           uint          `json:"Amount"`
	HardwareProvided string        `json:"HardwareProvided"`
	Duration         string        `json:"Duration"`
}

// Application links a techfugee to a challenge.
type Application struct {
	Model
	ApplicationID uint `json:"ApplicationID"`
	TechfugeeID   uint `json:"TechfugeeID"`
	ChallengeID   uint `json:"ChallengeID"`
	Accepted      bool `json:"Accepted"`
}

// FillerText is the payload of the filler-text service.
type FillerText struct {
	Type      string `json:"type"`
	Amount    int    `json:"amount"`
	Number    string `json:"number"`
	NumberMax string `json:"number_max"`
	Format    string `json:"format"`
	Time      string `json:"time"`
	TextOut   string `json:"text_out"`
}

// SkillList returns the decoded skill list of a techfugee. Invalid or empty
// text yields an empty list.
func (t Techfugee) SkillList() []string {
	return decodeSkills(t.Skills)
}
