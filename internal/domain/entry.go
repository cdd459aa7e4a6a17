package domain

const (
	// PlaceholderImageURL is used whenever an entry has no usable image.
	PlaceholderImageURL = "https://via.placeholder.com/300x400"

	// GenreUnknown is the sentinel stored when no genre data is available.
	GenreUnknown = "Unknown"

	// DescriptionLimit is the maximum stored description length in runes.
	DescriptionLimit = 500
)

// Entry is one record in the user's personal collection.
type Entry struct {
	ID          int64   `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Genre       string  `json:"genre" yaml:"genre"`
	ImageURL    string  `json:"imageUrl" yaml:"imageUrl"`
	IsFavorite  bool    `json:"isFavorite" yaml:"isFavorite"`
	IsFeatured  bool    `json:"isFeatured" yaml:"isFeatured"`
	MalID       int64   `json:"malId,omitempty" yaml:"malId,omitempty"`
}

// ManualForm carries a manually typed entry before normalization. Rating is
// kept as the raw typed string; the mapper coerces it.
type ManualForm struct {
	Title       string
	Description string
	Rating      string
	Genres      []string
	ImageURL    string
	IsFavorite  bool
}
