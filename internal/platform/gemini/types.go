package gemini

// promptData is the input to the prompt template.
type promptData struct {
	Word       string
	SourceLang string
	TargetLang string
}

// responseSchema is the JSON structure the model is asked to return.
type responseSchema struct {
	Synonyms      []string        `json:"synonyms"`
	PartOfSpeech  string          `json:"part_of_speech"`
	Gender        string          `json:"gender"`
	Transcription string          `json:"transcription"`
	Examples      []exampleSchema `json:"examples"`
}

type exampleSchema struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
}
