package team

// Team carries the bootstrap team record including the four strength
// ratings (attack/defence split by venue) surfaced to the strength
// comparison view. Code is the asset code used for badge URLs, distinct
// from the league-local ID.
type Team struct {
	ID        int
	Name      string
	ShortName string
	Code      int

	Strength            int
	StrengthAttackHome  int
	StrengthAttackAway  int
	StrengthDefenceHome int
	StrengthDefenceAway int
}
