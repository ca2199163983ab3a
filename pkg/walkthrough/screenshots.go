package walkthrough

import (
	"fmt"
	"path"
	"sort"

	"github.com/ventiq/ventiq-terminal/pkg/debug"
	"github.com/ventiq/ventiq-terminal/pkg/models"
)

// ScreenshotResolver maps (tutorial title, step index) to an image path.
// Resolution never fails: anything without a mapping resolves to the
// placeholder.
type ScreenshotResolver struct {
	index  *models.ScreenshotIndex
	assets models.AssetSettings
}

// NewScreenshotResolver creates a resolver. Empty asset settings fall back
// to the defaults.
func NewScreenshotResolver(index *models.ScreenshotIndex, assets models.AssetSettings) *ScreenshotResolver {
	defaults := models.DefaultSettings().Assets
	if assets.Root == "" {
		assets.Root = defaults.Root
	}
	if assets.SellerFolder == "" {
		assets.SellerFolder = defaults.SellerFolder
	}
	if assets.AdminFolder == "" {
		assets.AdminFolder = defaults.AdminFolder
	}
	if assets.Placeholder == "" {
		assets.Placeholder = defaults.Placeholder
	}
	return &ScreenshotResolver{index: index, assets: assets}
}

// Resolve returns the screenshot path for a step
func (r *ScreenshotResolver) Resolve(title string, index int) string {
	files, ok := r.index.Lookup(title)
	if !ok {
		debug.Log("screenshot: no mapping for tutorial %q, using placeholder", title)
		return r.assets.Placeholder
	}
	if index < 0 || index >= len(files) || files[index] == "" {
		debug.Log("screenshot: tutorial %q has no image for step %d, using placeholder", title, index+1)
		return r.assets.Placeholder
	}
	return path.Join(r.assets.Root, r.Folder(title), files[index])
}

// Folder returns the asset subfolder a tutorial's screenshots live in
func (r *ScreenshotResolver) Folder(title string) string {
	if r.index.IsSeller(title) {
		return r.assets.SellerFolder
	}
	return r.assets.AdminFolder
}

// Placeholder returns the fallback image path
func (r *ScreenshotResolver) Placeholder() string {
	return r.assets.Placeholder
}

// ProblemKind classifies a mismatch between the catalog and the index
type ProblemKind string

const (
	ProblemMissingMapping   ProblemKind = "missing-mapping"
	ProblemMissingImages    ProblemKind = "missing-images"
	ProblemExtraImages      ProblemKind = "extra-images"
	ProblemOrphanMapping    ProblemKind = "orphan-mapping"
	ProblemCategoryMismatch ProblemKind = "category-mismatch"
)

// Problem is one finding of Audit
type Problem struct {
	Kind   ProblemKind `json:"kind" yaml:"kind"`
	Key    string      `json:"key,omitempty" yaml:"key,omitempty"`
	Title  string      `json:"title" yaml:"title"`
	Detail string      `json:"detail" yaml:"detail"`
}

func (p Problem) String() string {
	if p.Key != "" {
		return fmt.Sprintf("[%s] %s (%s): %s", p.Kind, p.Key, p.Title, p.Detail)
	}
	return fmt.Sprintf("[%s] %s: %s", p.Kind, p.Title, p.Detail)
}

// Audit compares a catalog with a screenshot index. The lookup is keyed by
// human-readable titles, so renaming a tutorial silently drops its images;
// Audit makes that visible.
func Audit(catalog *models.Catalog, index *models.ScreenshotIndex) []Problem {
	var problems []Problem
	titles := make(map[string]bool)

	for _, t := range catalog.Tutorials() {
		titles[t.Title] = true

		files, ok := index.Lookup(t.Title)
		if !ok {
			problems = append(problems, Problem{
				Kind:   ProblemMissingMapping,
				Key:    t.Key,
				Title:  t.Title,
				Detail: fmt.Sprintf("no screenshots mapped; all %d steps use the placeholder", len(t.Steps)),
			})
			continue
		}

		switch {
		case len(files) < len(t.Steps):
			problems = append(problems, Problem{
				Kind:   ProblemMissingImages,
				Key:    t.Key,
				Title:  t.Title,
				Detail: fmt.Sprintf("%d steps but only %d screenshots; steps %d-%d use the placeholder", len(t.Steps), len(files), len(files)+1, len(t.Steps)),
			})
		case len(files) > len(t.Steps):
			problems = append(problems, Problem{
				Kind:   ProblemExtraImages,
				Key:    t.Key,
				Title:  t.Title,
				Detail: fmt.Sprintf("%d steps but %d screenshots; %d never shown", len(t.Steps), len(files), len(files)-len(t.Steps)),
			})
		}

		seller := index.IsSeller(t.Title)
		if seller != (t.Category == models.CategorySeller) {
			folder := "admin"
			if seller {
				folder = "seller"
			}
			problems = append(problems, Problem{
				Kind:   ProblemCategoryMismatch,
				Key:    t.Key,
				Title:  t.Title,
				Detail: fmt.Sprintf("category %s but screenshots resolve to the %s folder", t.Category, folder),
			})
		}
	}

	if index != nil {
		for title := range index.Files {
			if !titles[title] {
				problems = append(problems, Problem{
					Kind:   ProblemOrphanMapping,
					Title:  title,
					Detail: "screenshots mapped for a title that is not in the catalog",
				})
			}
		}
	}

	sortProblems(problems)
	return problems
}

func sortProblems(problems []Problem) {
	// Orphans come from map iteration; keep output stable.
	sort.SliceStable(problems, func(i, j int) bool {
		a, b := problems[i], problems[j]
		if (a.Key == "") != (b.Key == "") {
			return a.Key != ""
		}
		if a.Key != b.Key {
			return a.Key < b.Key
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.Kind < b.Kind
	})
}
