// Package audio plays pronunciation files through an external media
// player. Players that cannot stream from a URL are handed a downloaded
// temporary copy of the file.
package audio
