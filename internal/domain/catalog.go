package domain

// CatalogAnime is a single search result from the external catalog (Jikan).
// Read-only; the mapper converts it into an Entry draft.
type CatalogAnime struct {
	MalID    int64          `json:"mal_id"`
	Title    string         `json:"title"`
	Synopsis string         `json:"synopsis"`
	Score    float64        `json:"score"`
	Genres   []CatalogGenre `json:"genres"`
	Images   CatalogImages  `json:"images"`
}

type CatalogGenre struct {
	Name string `json:"name"`
}

type CatalogImages struct {
	JPG CatalogImageSet `json:"jpg"`
}

type CatalogImageSet struct {
	ImageURL      string `json:"image_url"`
	LargeImageURL string `json:"large_image_url"`
}
