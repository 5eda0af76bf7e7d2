package domain

import (
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

func init() {
	// Register the safepath validator to keep image filenames inside the images directory.
	_ = validatorInstance.RegisterValidation("safepath", validateSafePath)
}

// validateSafePath ensures the path doesn't contain any directory traversal attempts.
func validateSafePath(fl validator.FieldLevel) bool {
	path := fl.Field().String()

	if strings.Contains(path, "..") ||
		strings.HasPrefix(path, "/") ||
		strings.Contains(path, "\\") {
		return false
	}

	// Clean the path and check if it still matches the original.
	return path == filepath.Clean(path)
}

// Category classifies a work. The set is closed but unknown values are
// carried through untouched so that display code can pass them along.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryPhotography Category = "photography"
	CategoryPainting    Category = "painting"
)

// Categories lists the stored categories in display order.
var Categories = []Category{CategoryPhotography, CategoryPainting}

// Work is one portfolio artifact (a photo or a painting).
type Work struct {
	ID          int      `json:"id" validate:"gte=0"`
	Filename    string   `json:"filename" validate:"required,max=255,safepath"`
	Title       string   `json:"title" validate:"required"`
	Category    Category `json:"category" validate:"required,oneof=photography painting"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Price       *float64 `json:"price"`
}

// Validate runs validation checks on the Work using the defined tags.
func (w *Work) Validate() error {
	return validatorInstance.Struct(w)
}

// WorksFile is the on-disk wrapper of works.json.
type WorksFile struct {
	Works []Work `json:"works"`
}

// Price returns a pointer to p, handy for building works in code.
func Price(p float64) *float64 {
	return &p
}
