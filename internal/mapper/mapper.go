// Package mapper converts catalog search results and manual form input into
// the canonical collection entry shape. Both paths are pure transformations:
// no I/O, deterministic given identical input.
package mapper

import (
	"math"
	"strconv"
	"strings"

	"github.com/anikeep/anikeep/internal/domain"
)

// descriptionFallback is stored when neither a description nor a synopsis is
// available.
const descriptionFallback = "No description available"

// FromCatalog builds an Entry draft from a catalog search result. The id is
// left unset; the store assigns it. Truncation of the synopsis is policy and
// therefore a parameter rather than a rule.
func FromCatalog(a domain.CatalogAnime, truncate bool) (domain.Entry, error) {
	title := strings.TrimSpace(a.Title)
	if title == "" {
		return domain.Entry{}, &domain.ValidationError{Field: "title"}
	}

	description := strings.TrimSpace(a.Synopsis)
	if description == "" {
		description = descriptionFallback
	}
	if truncate {
		description = truncateRunes(description, domain.DescriptionLimit)
	}

	genre := ""
	if len(a.Genres) > 0 {
		names := make([]string, 0, len(a.Genres))
		for _, g := range a.Genres {
			names = append(names, g.Name)
		}
		genre = strings.Join(names, ", ")
	}

	image := a.Images.JPG.LargeImageURL
	if image == "" {
		image = a.Images.JPG.ImageURL
	}

	return domain.Entry{
		Title:       title,
		Description: description,
		Rating:      ClampRating(a.Score),
		Genre:       NormalizeGenre(genre),
		ImageURL:    normalizeImage(image),
		IsFavorite:  false,
		IsFeatured:  false,
		MalID:       a.MalID,
	}, nil
}

// FromForm builds an Entry draft from a manually typed form. Manual entries
// have no catalog id and are always truncated to the description limit.
func FromForm(f domain.ManualForm) (domain.Entry, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return domain.Entry{}, &domain.ValidationError{Field: "title"}
	}

	description := strings.TrimSpace(f.Description)
	if description == "" {
		description = descriptionFallback
	}
	description = truncateRunes(description, domain.DescriptionLimit)

	rating := 0.0
	if v, err := strconv.ParseFloat(strings.TrimSpace(f.Rating), 64); err == nil {
		rating = v
	}

	return domain.Entry{
		Title:       title,
		Description: description,
		Rating:      ClampRating(rating),
		Genre:       NormalizeGenre(strings.Join(f.Genres, ", ")),
		ImageURL:    normalizeImage(f.ImageURL),
		IsFavorite:  f.IsFavorite,
		IsFeatured:  false,
	}, nil
}

// ClampRating forces a rating into [0, 10]. NaN, negative, and missing values
// all normalize to 0; storage never sees NaN.
func ClampRating(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r > 10 {
		return 10
	}
	return r
}

// NormalizeGenre trims a comma-joined genre string and substitutes the
// sentinel when nothing remains. Membership stays a flat, order-preserving,
// comma-joined string, never a set.
func NormalizeGenre(genre string) string {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return domain.GenreUnknown
	}
	return genre
}

func normalizeImage(url string) string {
	if strings.TrimSpace(url) == "" {
		return domain.PlaceholderImageURL
	}
	return url
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
