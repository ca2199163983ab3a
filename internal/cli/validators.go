package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ventiq/ventiq-terminal/pkg/models"
)

// CategoryAll selects every category in listings
const CategoryAll = "all"

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// NormalizeCategory maps category variants to seller, admin or all
func NormalizeCategory(c string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(c)) {
	case "", CategoryAll:
		return CategoryAll, nil
	case "seller", "sellers", "vendedor":
		return models.CategorySeller, nil
	case "admin", "admins", "administrador":
		return models.CategoryAdmin, nil
	default:
		return "", fmt.Errorf("invalid category: %s (must be: seller, admin, or all)", c)
	}
}

// ParseStepNumber parses a 1-based step number
func ParseStepNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid step number: %s", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("step number must be 1 or greater, got %d", n)
	}
	return n, nil
}

// ValidateStep checks that n is a step of the tutorial
func ValidateStep(t *models.Tutorial, n int) error {
	if n < 1 || n > len(t.Steps) {
		return fmt.Errorf("tutorial '%s' has %d steps, step %d is out of range", t.Key, len(t.Steps), n)
	}
	return nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
