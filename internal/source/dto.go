package source

// previewDTO is one entry of the catalog listing endpoint.
type previewDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Seasons     int    `json:"seasons"`
	Image       string `json:"image"`
	Genres      []int  `json:"genres"`
	Updated     string `json:"updated"`
}

// showDTO is the full show record. Unlike the listing, the detail endpoint
// spells genres out as titles and embeds the season/episode tree.
type showDTO struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Seasons     []seasonDTO `json:"seasons"`
	Image       string      `json:"image"`
	Genres      []string    `json:"genres"`
	Updated     string      `json:"updated"`
}

type seasonDTO struct {
	Season      int          `json:"season"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Image       string       `json:"image"`
	Episodes    []episodeDTO `json:"episodes"`
}

type episodeDTO struct {
	Episode     int    `json:"episode"`
	Title       string `json:"title"`
	Description string `json:"description"`
	File        string `json:"file"`
}
