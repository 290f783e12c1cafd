package relation

// Config carries the extraction options. The vague word sets filter
// low-information auxiliaries, adverbs and adjectives out of verb phrases.
//
// A Config is treated as immutable once handed to an Extractor; callers that
// want different stoplists build a new Config.
type Config struct {
	// VagueAux excludes auxiliary/negation lemmas from verb phrases.
	VagueAux map[string]bool

	// VagueAdverbs excludes adverbial modifier lemmas from verb phrases.
	VagueAdverbs map[string]bool

	// VagueAdjectives excludes adjectival modifier lemmas from verb phrases.
	VagueAdjectives map[string]bool

	// Dedup removes duplicate phrases within one subject or object
	// resolution. The resolver branches are additive and can produce the
	// same phrase twice; duplicates are kept by default.
	Dedup bool
}

// DefaultConfig returns the stock stoplists.
func DefaultConfig() Config {
	return Config{
		VagueAux: set(
			"be", "do", "have", "to",
			"will", "would", "shall", "should",
			"can", "could", "may", "might", "must",
		),
		VagueAdverbs: set(
			"very", "really", "quite", "just", "so", "too",
			"rather", "somewhat", "almost", "simply", "actually",
			"then", "also", "there", "here", "still", "even",
		),
		VagueAdjectives: set(
			"such", "same", "other", "certain", "own",
		),
	}
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}

	return m
}
