package dictionary

// apiResponse is the body returned by the headword lookup endpoint.
type apiResponse struct {
	Status  int        `json:"status"`
	Results []apiEntry `json:"results"`
}

// apiEntry is one dictionary entry for the headword.
type apiEntry struct {
	Headword       string             `json:"headword"`
	PartOfSpeech   string             `json:"part_of_speech"`
	Senses         []apiSense         `json:"senses"`
	Pronunciations []apiPronunciation `json:"pronunciations"`
}

// apiSense is one meaning of the headword.
type apiSense struct {
	Definition          []string                `json:"definition"`
	CollocationExamples []apiCollocationExample `json:"collocation_examples"`
	Examples            []apiExample            `json:"examples"`
}

// apiCollocationExample is an example attached to a word combination.
type apiCollocationExample struct {
	Collocation string      `json:"collocation"`
	Example     *apiExample `json:"example"`
}

type apiExample struct {
	Text string `json:"text"`
}

type apiPronunciation struct {
	IPA   string     `json:"ipa"`
	Audio []apiAudio `json:"audio"`
}

// apiAudio points at an audio asset relative to the API host.
type apiAudio struct {
	Lang string `json:"lang"`
	Type string `json:"type"`
	URL  string `json:"url"`
}
