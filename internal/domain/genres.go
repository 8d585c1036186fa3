package domain

import (
	"fmt"
	"sort"
)

// Genre is a static lookup entry mapping a genre id to its display title.
type Genre struct {
	ID    int
	Title string
}

// genreTable is the process-wide genre lookup. Loaded once, never mutated.
var genreTable = map[int]string{
	1: "Personal Growth",
	2: "Investigative Journalism",
	3: "History",
	4: "Comedy",
	5: "Entertainment",
	6: "Business",
	7: "Fiction",
	8: "News",
	9: "Kids and Family",
}

// GenreTitle resolves a genre id to its display title. Unknown ids degrade
// to "Unknown (<id>)" and never fail.
func GenreTitle(id int) string {
	if title, ok := genreTable[id]; ok {
		return title
	}
	return fmt.Sprintf("Unknown (%d)", id)
}

// GenreTitles resolves a list of genre ids to display titles, preserving order.
func GenreTitles(ids []int) []string {
	titles := make([]string, len(ids))
	for i, id := range ids {
		titles[i] = GenreTitle(id)
	}
	return titles
}

// AllGenres returns every known genre ordered by id.
func AllGenres() []Genre {
	genres := make([]Genre, 0, len(genreTable))
	for id, title := range genreTable {
		genres = append(genres, Genre{ID: id, Title: title})
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres
}
