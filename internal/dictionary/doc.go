// Package dictionary fetches definitions, IPA transcriptions, example
// sentences and pronunciation audio from a headword lookup service.
package dictionary
