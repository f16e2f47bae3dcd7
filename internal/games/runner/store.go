package runner

// HighScoreKey is the persistence key of the best score. It must not change
// between releases or saved records are lost.
const HighScoreKey = "runner_high_score"

// HighScoreStore is the key-value persistence the session reads once at
// start and writes when a run beats the high score.
type HighScoreStore interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (int, bool, error)
	// Set stores value under key.
	Set(key string, value int) error
}
