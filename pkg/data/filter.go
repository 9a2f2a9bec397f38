package data

import (
	"slices"
	"sort"
	"strconv"
	"strings"
)

// StaticGenres are always offered as genre filter options, whatever the
// catalog holds.
var StaticGenres = []string{
	"Fiction", "Non-Fiction", "Science Fiction", "Fantasy", "Biography",
	"Mystery", "Thriller", "Romance", "Historical", "Self-Help",
	"Adventure", "Horror", "Poetry", "Drama", "Philosophy",
	"Children", "Young Adult", "Graphic Novel", "Cooking", "Travel",
}

// Filter selects books by genre, publication year and a free text term.
// Empty criteria match everything.
type Filter struct {
	Genres []string
	Years  []string
	Search string
}

func (f Filter) IsZero() bool {
	return len(f.Genres) == 0 && len(f.Years) == 0 && f.Search == ""
}

func (f Filter) Matches(b *Book) bool {
	if len(f.Genres) > 0 && !slices.Contains(f.Genres, b.Genre) {
		return false
	}
	if len(f.Years) > 0 && !slices.Contains(f.Years, strconv.Itoa(b.Published)) {
		return false
	}
	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(b.Title), term) ||
		strings.Contains(strings.ToLower(b.Author), term)
}

// Apply keeps the matching books in their original order.
func (f Filter) Apply(books []*Book) []*Book {
	out := make([]*Book, 0, len(books))
	for _, b := range books {
		if f.Matches(b) {
			out = append(out, b)
		}
	}
	return out
}

// GenreOptions merges StaticGenres with the genres seen in books.
func GenreOptions(books []*Book) []string {
	seen := make(map[string]struct{}, len(StaticGenres)+len(books))
	for _, g := range StaticGenres {
		seen[g] = struct{}{}
	}
	for _, b := range books {
		if b.Genre != "" {
			seen[b.Genre] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// YearOptions lists the distinct publication years in books.
func YearOptions(books []*Book) []string {
	seen := make(map[string]struct{}, len(books))
	for _, b := range books {
		seen[strconv.Itoa(b.Published)] = struct{}{}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
