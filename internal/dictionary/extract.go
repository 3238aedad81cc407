package dictionary

import (
	"path"
	"strings"
)

// extractDefinition returns the first definition of the first sense.
func extractDefinition(e *apiEntry) (string, bool) {
	if len(e.Senses) == 0 || len(e.Senses[0].Definition) == 0 {
		return "", false
	}
	def := strings.TrimSpace(e.Senses[0].Definition[0])
	return def, def != ""
}

// extractPhonetic returns the IPA string of the first pronunciation.
func extractPhonetic(e *apiEntry) (string, bool) {
	if len(e.Pronunciations) == 0 {
		return "", false
	}
	ipa := strings.TrimSpace(e.Pronunciations[0].IPA)
	return ipa, ipa != ""
}

// extractExample returns an example sentence for the first sense. The
// collocation example is preferred; the plain examples list is the
// fallback.
func extractExample(e *apiEntry) (string, bool) {
	if len(e.Senses) == 0 {
		return "", false
	}
	sense := e.Senses[0]

	if len(sense.CollocationExamples) > 0 {
		if ex := sense.CollocationExamples[0].Example; ex != nil && ex.Text != "" {
			return ex.Text, true
		}
	}

	if len(sense.Examples) > 0 && sense.Examples[0].Text != "" {
		return sense.Examples[0].Text, true
	}

	return "", false
}

// extractAudioPath returns the asset path of the first pronunciation's
// first audio file.
func extractAudioPath(e *apiEntry) (string, bool) {
	if len(e.Pronunciations) == 0 || len(e.Pronunciations[0].Audio) == 0 {
		return "", false
	}
	p := e.Pronunciations[0].Audio[0].URL
	return p, p != ""
}

// mediaURL rewrites an API asset path into a URL on the media host. Only
// the file name of the asset is kept.
func mediaURL(mediaBase, assetPath string) string {
	return strings.TrimRight(mediaBase, "/") + "/" + path.Base(assetPath)
}
