// Package thesaurus scrapes synonyms from a thesaurus browse page.
package thesaurus
