// Package search finds tutorials by title, step text and category.
// Matching ignores case and accents, so "configuracion" finds
// "Configuración".
package search

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/ventiq/ventiq-terminal/pkg/models"
)

// Result is one matching tutorial
type Result struct {
	Key      string  `json:"key" yaml:"key"`
	Title    string  `json:"title" yaml:"title"`
	Category string  `json:"category" yaml:"category"`
	Score    float64 `json:"score" yaml:"score"`
	// Steps lists the 1-based steps whose text matched
	Steps []int `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// entry is a tutorial with its text folded for matching
type entry struct {
	tutorial   *models.Tutorial
	title      string
	stepTitles []string
	stepTexts  []string
}

// Engine searches one catalog
type Engine struct {
	mu      sync.RWMutex
	entries []entry
	parser  *Parser
}

// NewEngine creates an engine indexing catalog
func NewEngine(catalog *models.Catalog) *Engine {
	e := &Engine{parser: NewParser()}
	e.Index(catalog)
	return e
}

// Index replaces the indexed catalog
func (e *Engine) Index(catalog *models.Catalog) {
	var entries []entry
	if catalog != nil {
		for _, t := range catalog.Tutorials() {
			ent := entry{tutorial: t, title: Fold(t.Title)}
			for _, step := range t.Steps {
				ent.stepTitles = append(ent.stepTitles, Fold(step.Title))
				text := step.Title + "\n" + step.Body + "\n" + strings.Join(step.Instructions, "\n")
				ent.stepTexts = append(ent.stepTexts, Fold(text))
			}
			entries = append(entries, ent)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = entries
}

// Search returns the tutorials matching query, best first. Ties keep
// catalog order.
func (e *Engine) Search(queryStr string) ([]Result, error) {
	query, err := e.parser.Parse(queryStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query: %w", err)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	var matches []int
	if len(query.Conditions) == 0 {
		matches = e.all()
	} else {
		matches = e.evaluate(query.Conditions[0])
		for i, cond := range query.Conditions[1:] {
			switch query.Logic[i] {
			case OperatorOR:
				matches = unionIndices(matches, e.evaluate(cond))
			default:
				matches = intersectIndices(matches, e.evaluate(cond))
			}
		}
	}

	results := make([]Result, 0, len(matches))
	for _, idx := range matches {
		ent := e.entries[idx]
		score, steps := e.score(ent, query)
		results = append(results, Result{
			Key:      ent.tutorial.Key,
			Title:    ent.tutorial.Title,
			Category: ent.tutorial.Category,
			Score:    score,
			Steps:    steps,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

// evaluate returns the sorted indices of entries matching cond
func (e *Engine) evaluate(cond Condition) []int {
	value := Fold(cond.Value)

	var matches []int
	for i, ent := range e.entries {
		if ent.matches(cond.Field, value) != cond.Negate {
			matches = append(matches, i)
		}
	}
	return matches
}

func (ent entry) matches(field FieldType, value string) bool {
	switch field {
	case FieldCategory:
		return strings.HasPrefix(ent.tutorial.Category, value)
	case FieldKey:
		return strings.HasPrefix(Fold(ent.tutorial.Key), value)
	case FieldTitle:
		return strings.Contains(ent.title, value)
	case FieldStep:
		return containsAny(ent.stepTitles, value)
	default:
		return strings.Contains(ent.title, value) || containsAny(ent.stepTexts, value)
	}
}

// score weighs title hits over step title hits over body hits. Negated
// conditions only filter.
func (e *Engine) score(ent entry, query *Query) (float64, []int) {
	score := 1.0
	hit := make(map[int]bool)

	for _, cond := range query.Conditions {
		if cond.Negate {
			continue
		}
		value := Fold(cond.Value)

		switch cond.Field {
		case FieldKey:
			if Fold(ent.tutorial.Key) == value {
				score += 2
			}
		case FieldTitle:
			if strings.Contains(ent.title, value) {
				score += 3
			}
		case FieldStep, FieldText:
			if cond.Field == FieldText && strings.Contains(ent.title, value) {
				score += 3
			}
			for i := range ent.stepTexts {
				switch {
				case strings.Contains(ent.stepTitles[i], value):
					score += 1.5
					hit[i+1] = true
				case cond.Field == FieldText && strings.Contains(ent.stepTexts[i], value):
					score += 0.5
					hit[i+1] = true
				}
			}
		}
	}

	var steps []int
	for n := range hit {
		steps = append(steps, n)
	}
	sort.Ints(steps)
	return score, steps
}

func (e *Engine) all() []int {
	indices := make([]int, len(e.entries))
	for i := range indices {
		indices[i] = i
	}
	return indices
}

// Fold lowercases s and strips accents
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

func containsAny(texts []string, value string) bool {
	for _, text := range texts {
		if strings.Contains(text, value) {
			return true
		}
	}
	return false
}

// intersectIndices and unionIndices take and return ascending indices
func intersectIndices(a, b []int) []int {
	set := make(map[int]bool, len(b))
	for _, v := range b {
		set[v] = true
	}

	var result []int
	for _, v := range a {
		if set[v] {
			result = append(result, v)
		}
	}
	return result
}

func unionIndices(a, b []int) []int {
	set := make(map[int]bool, len(a)+len(b))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		set[v] = true
	}

	result := make([]int, 0, len(set))
	for v := range set {
		result = append(result, v)
	}
	sort.Ints(result)
	return result
}
