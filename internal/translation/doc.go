// Package translation translates English phrases into French or German.
// The default backend is a phrase translation web service; OpenAI and
// Gemini chat models can be configured instead.
package translation
