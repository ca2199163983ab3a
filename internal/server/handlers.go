package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ventiq/ventiq-terminal/pkg/debug"
	"github.com/ventiq/ventiq-terminal/pkg/models"
	"github.com/ventiq/ventiq-terminal/pkg/walkthrough"
)

// TutorialSummary is one entry of the tutorial listing
type TutorialSummary struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Steps    int    `json:"steps"`
}

// ScreenshotResponse is the body of the screenshot endpoint
type ScreenshotResponse struct {
	Path string `json:"path"`
}

// listTutorialsHandler lists tutorials, optionally filtered with ?category=
func (s *Server) listTutorialsHandler(w http.ResponseWriter, r *http.Request) {
	catalog, _ := s.snapshot()

	tutorials := catalog.Tutorials()
	switch category := r.URL.Query().Get("category"); category {
	case "", "all":
	case models.CategorySeller, models.CategoryAdmin:
		tutorials = catalog.ByCategory(category)
	default:
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}

	summaries := make([]TutorialSummary, 0, len(tutorials))
	for _, t := range tutorials {
		summaries = append(summaries, TutorialSummary{
			Key:      t.Key,
			Title:    t.Title,
			Category: t.Category,
			Steps:    len(t.Steps),
		})
	}
	writeJSON(w, summaries)
}

// getTutorialHandler returns a whole tutorial
func (s *Server) getTutorialHandler(w http.ResponseWriter, r *http.Request) {
	catalog, _ := s.snapshot()

	t, ok := catalog.Get(mux.Vars(r)["key"])
	if !ok {
		http.Error(w, "tutorial not found", http.StatusNotFound)
		return
	}
	writeJSON(w, t)
}

// getStepHandler returns the render state of a 1-based step, driving a
// controller owned by this request
func (s *Server) getStepHandler(w http.ResponseWriter, r *http.Request) {
	catalog, resolver := s.snapshot()
	vars := mux.Vars(r)

	n, err := strconv.Atoi(vars["n"])
	if err != nil {
		http.Error(w, "invalid step number", http.StatusBadRequest)
		return
	}

	c := walkthrough.NewController(catalog, resolver, walkthrough.WithLabels(s.settings.Labels))
	if !c.StepTo(vars["key"], n) {
		http.Error(w, "step not found", http.StatusNotFound)
		return
	}

	state, _ := c.State()
	writeJSON(w, state)
}

// getScreenshotHandler resolves the screenshot of a 1-based step. It
// always answers with a path, the placeholder when nothing is mapped.
func (s *Server) getScreenshotHandler(w http.ResponseWriter, r *http.Request) {
	catalog, resolver := s.snapshot()
	vars := mux.Vars(r)

	n, err := strconv.Atoi(vars["n"])
	if err != nil {
		http.Error(w, "invalid step number", http.StatusBadRequest)
		return
	}

	path := resolver.Placeholder()
	if t, ok := catalog.Get(vars["key"]); ok {
		path = resolver.Resolve(t.Title, n-1)
	}
	writeJSON(w, ScreenshotResponse{Path: path})
}

// searchHandler runs ?q= against the catalog. An empty query lists
// everything.
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	results, err := s.search.Search(r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, results)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		debug.Log("server: failed to encode response: %v", err)
	}
}
