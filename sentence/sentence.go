package sentence

// Doc is a parsed document: an ordered collection of sentences plus metadata.
type Doc struct {
	Id int `json:"id"`

	Title string `json:"title"`

	Labels    []string   `json:"labels,omitempty"`
	Sentences []Sentence `json:"sentences"`
}

// Library is a collection of Doc
type Library []Doc

// Sentence is one parsed sentence of a Doc.
type Sentence struct {
	Id     int     `json:"id"`
	DocId  int     `json:"doc,omitempty"`
	Tokens []Token `json:"tokens"`
}

// Token represents a word of the sentence, with POS and metadata.
//
// Tokens are produced by an external parser (spacy, stanza) and exported as
// JSON. They are read-only for every package of this module: structural
// navigation happens through Tree, never by mutating tokens.
type Token struct {
	Id int `json:"id"`

	// Head is the Index of the head token within the same sentence.
	// The sentence root has Head == Index.
	Head       int `json:"head"`
	SentenceId int `json:"sent"`

	// Pos is the coarse POS class (NOUN, VERB, AUX, PROPN, PRON, ADJ, ADP,
	// DET, SCONJ, CCONJ, PART, ...)
	Pos string `json:"pos"`

	// Dep is the dependency label relative to the head (nsubj, dobj, prep,
	// conj, amod, compound, acl, relcl, xcomp, ccomp, agent, mark, neg, ...)
	Dep string `json:"dep"`

	// Tag is the fine-grained POS tag (VB, VBD, VBN, NNP, ...)
	Tag string `json:"tag"`

	// Morph contains the morphological features as exported by the parser,
	// '|' separated: "Mood=Imp|VerbForm=Fin"
	Morph string `json:"morph,omitempty"`

	// the index of the start character of the token in the original doc (set by spacy, stanza)
	Idx int `json:"idx"`

	// The unmodified word
	Text string `json:"text"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// The index of the word in the sentence, starting at 0.
	Index int `json:"index"`
}

// HasMorph reports whether the token carries the exact morphological feature,
// f.ex. "Mood=Imp".
func (t Token) HasMorph(feature string) bool {
	start := 0
	for i := 0; i <= len(t.Morph); i++ {
		if i == len(t.Morph) || t.Morph[i] == '|' {
			if t.Morph[start:i] == feature {
				return true
			}
			start = i + 1
		}
	}

	return false
}
