package constants

// Match Targets
const (
	DefaultTargetScore = 10
	AltTargetScore     = 12
)

// Hit Points
const (
	MaxHP = 100

	// Opponent scores: the player takes the larger hit, the opponent a smaller one
	PlayerHPLossOnConcede   = 15
	OpponentHPLossOnScoring = 10

	// Player scores: only the opponent loses HP
	OpponentHPLossOnConcede = 15
)

// Confidence Meter
const (
	ConfidenceMin     = 0
	ConfidenceMax     = 100
	ConfidenceInitial = 50

	// ConfidenceHitDelta applies on paddle contact (player -, opponent +)
	ConfidenceHitDelta = 5
	// ConfidenceScoreDelta applies on a point (opponent scores +, player scores -)
	ConfidenceScoreDelta = 25

	// Mood thresholds: <= AgitatedMax agitated, >= DominantMin dominant
	ConfidenceAgitatedMax = 29
	ConfidenceDominantMin = 75
)

// Score-difference mood thresholds used when the meter is disabled
const (
	ScoreDiffDominant = 2
	ScoreDiffAgitated = -2
)
