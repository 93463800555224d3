package noticias

import "fmt"

// Categories is the fixed category taxonomy. Writes outside it are rejected;
// reads tolerate news without a category.
var Categories = []string{
	"cultura",
	"moda",
	"esporte",
	"arte",
	"politica",
	"natureza",
	"saude",
	"ciencia",
	"entretenimento",
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func checkCategory(category *string) error {
	if category == nil {
		return nil
	}
	if !validCategory(*category) {
		return fmt.Errorf("invalid category %q: %w", *category, ErrValidation)
	}
	return nil
}
