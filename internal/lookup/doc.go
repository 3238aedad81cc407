// Package lookup combines the dictionary, thesaurus and translation
// sources into a single report. It owns the result model shared by the
// source clients, the closed set of lookup errors and the formatter that
// renders a result for the terminal.
package lookup
