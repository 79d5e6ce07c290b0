package donatugee

// Relative paths of backend operations. They double as operation names in
// logs and metrics.
const (
	PathInsertDonator          = "insert-donator"
	PathInsertTechfugee        = "insert-techfugee"
	PathLoginDonator           = "login-donator"
	PathAddSkills              = "add-skills"
	PathChallenges             = "challenges"
	PathApplicationByTechfugee = "application-by-techfugee"
	PathChallenge              = "challenge"
	PathTechfugee              = "techfugee"
	PathUpdateTechfugee        = "update-techfugee"
	PathDonator                = "donator"
	PathUpdateAuth             = "update-auth"
	PathInsertApplication      = "insert-application"
	PathChallengesByDonator    = "challenges-by-donator"
	PathInsertChallenge        = "insert-challenge"
	PathAcceptApplication      = "accept-application"
)

// OpRandomText names the filler-text call, which has no backend path.
const OpRandomText = "random-text"
