// Package catalog holds the built-in VentIQ tutorials and the screenshot
// index that maps each tutorial step to an image.
package catalog

import (
	"fmt"

	"github.com/ventiq/ventiq-terminal/pkg/models"
)

// Builtin returns a fresh catalog with every built-in tutorial, seller
// tutorials first.
func Builtin() *models.Catalog {
	var all []*models.Tutorial
	for _, t := range sellerTutorials() {
		t.Category = models.CategorySeller
		all = append(all, t)
	}
	for _, t := range adminTutorials() {
		t.Category = models.CategoryAdmin
		all = append(all, t)
	}

	c, err := models.NewCatalog(all)
	if err != nil {
		// Built-in data is static; a failure here is a programming error.
		panic(fmt.Sprintf("catalog: invalid built-in tutorials: %v", err))
	}
	return c
}

// Category returns the category of a built-in tutorial key, or "" when the
// key is unknown
func Category(key string) string {
	for _, t := range sellerTutorials() {
		if t.Key == key {
			return models.CategorySeller
		}
	}
	for _, t := range adminTutorials() {
		if t.Key == key {
			return models.CategoryAdmin
		}
	}
	return ""
}

// Categories lists the known categories in display order
func Categories() []string {
	return []string{models.CategorySeller, models.CategoryAdmin}
}
