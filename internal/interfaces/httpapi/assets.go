package httpapi

import "fmt"

const assetBaseURL = "https://resources.premierleague.com/premierleague"

// teamBadgeURL builds the public crest URL from the team's opta code.
// A zero code means the team was never resolved, so no URL is emitted.
func teamBadgeURL(teamCode int) string {
	if teamCode <= 0 {
		return ""
	}
	return fmt.Sprintf("%s/badges/t%d.svg", assetBaseURL, teamCode)
}

// playerPhotoURL builds the public headshot URL from the player's opta
// code.
func playerPhotoURL(playerCode int) string {
	if playerCode <= 0 {
		return ""
	}
	return fmt.Sprintf("%s/photos/players/110x140/p%d.png", assetBaseURL, playerCode)
}
