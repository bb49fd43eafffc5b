package data

import (
	"strings"
	"time"
)

const (
	// Ext is the extension every memo file carries.
	Ext = ".txt"

	// StampLayout formats the creation time embedded in a memo filename.
	StampLayout = "2006-01-02T15-04-05"

	separator = "_"
)

// Memo is a single stored note as seen through a directory listing.
// The file body is not loaded; use Store.Read for that.
type Memo struct {
	ID        string    // Filename, the memo's only identifier
	Title     string    // Filename minus stamp prefix and extension
	Stamp     string    // Raw timestamp prefix as written in the filename
	CreatedAt time.Time // Stamp parsed in local time, zero if it does not parse
	Size      int64     // Body size in bytes
}

func (m Memo) String() string {
	return m.Title + " (" + m.Stamp + ")"
}

// FilenameFor builds the identifier for a memo created at t.
// "2026-10-19T09-30-00_groceries.txt"
func FilenameFor(t time.Time, title string) string {
	return t.Format(StampLayout) + separator + title + Ext
}

// ParseFilename splits a memo filename back into its title and stamp.
// Titles may contain the separator themselves, so everything after the
// first one belongs to the title.
func ParseFilename(name string) (title, stamp string) {
	base := strings.TrimSuffix(name, Ext)
	stamp, title, found := strings.Cut(base, separator)
	if !found {
		return "", base
	}
	return title, stamp
}

// memoFromFilename builds the listing record for a file of the given size.
func memoFromFilename(name string, size int64) Memo {
	title, stamp := ParseFilename(name)
	created, err := time.ParseInLocation(StampLayout, stamp, time.Local)
	if err != nil {
		created = time.Time{}
	}
	return Memo{
		ID:        name,
		Title:     title,
		Stamp:     stamp,
		CreatedAt: created,
		Size:      size,
	}
}
