package main

import (
	"fmt"

	"github.com/anikeep/anikeep/internal/domain"
)

func printCatalogResults(results []domain.CatalogAnime) {
	if len(results) == 0 {
		fmt.Println("No results found")
		return
	}

	for _, r := range results {
		fmt.Printf("%8d  %-50s  %.1f\n", r.MalID, truncateTitle(r.Title), r.Score)
	}
}

func printEntries(entries []domain.Entry) {
	if len(entries) == 0 {
		fmt.Println("The collection is empty")
		return
	}

	for _, e := range entries {
		fmt.Printf("%14d  %-50s  %4.1f  %s%s\n", e.ID, truncateTitle(e.Title), e.Rating, mark(e.IsFavorite, "fav"), mark(e.IsFeatured, " feat"))
	}
}

func printEntry(e *domain.Entry) {
	fmt.Printf("ID:          %d\n", e.ID)
	fmt.Printf("Title:       %s\n", e.Title)
	fmt.Printf("Rating:      %.1f\n", e.Rating)
	fmt.Printf("Genre:       %s\n", e.Genre)
	fmt.Printf("Image:       %s\n", e.ImageURL)
	fmt.Printf("Favorite:    %v\n", e.IsFavorite)
	fmt.Printf("Featured:    %v\n", e.IsFeatured)
	if e.MalID != 0 {
		fmt.Printf("MAL ID:      %d\n", e.MalID)
	}
	fmt.Printf("Description: %s\n", e.Description)
}

func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= 50 {
		return title
	}
	return string(runes[:47]) + "..."
}

func mark(on bool, label string) string {
	if !on {
		return ""
	}
	return label
}
