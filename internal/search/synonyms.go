package search

// Lithuanian grocery category keys mapped to related terms. Static domain
// data, not user-configurable.
var synonyms = map[string][]string{
	"vistiena": {"vištiena", "vištienos", "višta"},
	"mesa":     {"mėsa", "vištiena", "kiauliena", "jautiena", "dešra", "nugriebta mėsa"},
	"pienas":   {"pienas", "varškė", "sūris", "grietinė", "sviestas"},
	"bulvės":   {"bulvės", "bulvytės"},
	"duona":    {"duona", "batonas", "rauginta duona", "duoniukas"},
	"kava":     {"kava", "espresso", "cappuccino", "latte"},
	"aliejus":  {"aliejus", "alyvuogių aliejus", "saulėgrąžų aliejus"},
	"uogos":    {"braškės", "avietės", "šilauogės", "gervuogės"},
	"žuvis":    {"žuvis", "lašiša", "tuna", "skumbrė", "upėtakis"},
	"daržovės": {"morka", "pomidoras", "agurkas", "paprika", "salotos"},
	"vaisiai":  {"obuolys", "bananas", "kriaušė", "apelsinas", "mandarinas"},
}

// normalizedSynonyms holds the same table with keys and terms passed through
// Normalize, built once at init so lookups never re-normalize static data.
var normalizedSynonyms = func() map[string][]string {
	out := make(map[string][]string, len(synonyms))
	for key, terms := range synonyms {
		normalized := make([]string, 0, len(terms))
		for _, term := range terms {
			normalized = append(normalized, Normalize(term))
		}
		out[Normalize(key)] = normalized
	}
	return out
}()

// CategoryKeys returns the known category keys in normalized form.
func CategoryKeys() []string {
	keys := make([]string, 0, len(normalizedSynonyms))
	for key := range normalizedSynonyms {
		keys = append(keys, key)
	}
	return keys
}
