package game

const (
	pointsPerLetter = 10
	pointsPerLife   = 5
)

// Points awarded for a guessed word of wordLen letters with lives remaining.
func Points(wordLen, lives int) int {
	return wordLen*pointsPerLetter + lives*pointsPerLife
}
