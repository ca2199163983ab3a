package walkthrough

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/ventiq/ventiq-terminal/pkg/catalog"
	"github.com/ventiq/ventiq-terminal/pkg/models"
)

// TestControllerProperties drives random action sequences against every
// built-in tutorial and checks the state machine invariants after each one
func TestControllerProperties(t *testing.T) {
	cat := catalog.Builtin()
	resolver := NewScreenshotResolver(catalog.BuiltinScreenshots(), models.DefaultSettings().Assets)

	rapid.Check(t, func(t *rapid.T) {
		key := rapid.SampledFrom(cat.Keys()).Draw(t, "key")
		tutorial, _ := cat.Get(key)
		actions := rapid.SliceOfN(rapid.SampledFrom([]Action{ActionNext, ActionPrevious, ActionClose}), 0, 60).Draw(t, "actions")

		rec := &recorder{}
		c := NewController(cat, resolver, WithPresenter(rec), WithNotifier(rec))
		c.Open(key)

		index := 0
		open := true
		completions := 0

		for _, action := range actions {
			transition := c.Dispatch(action)

			// Model the expected transition
			switch {
			case !open:
				if transition != Ignored {
					t.Fatalf("%s while closed returned %s", action, transition)
				}
			case action == ActionNext && index == len(tutorial.Steps)-1:
				if transition != Completed {
					t.Fatalf("next on the last step returned %s", transition)
				}
				open = false
				completions++
			case action == ActionNext:
				index++
			case action == ActionPrevious && index > 0:
				index--
			case action == ActionClose:
				open = false
			}

			session, ok := c.Session()
			if ok != open {
				t.Fatalf("open = %v, want %v", ok, open)
			}
			if ok && session.Index != index {
				t.Fatalf("index = %d, want %d", session.Index, index)
			}
			if len(rec.completed) != completions {
				t.Fatalf("completions = %d, want %d", len(rec.completed), completions)
			}

			if !open && rapid.Bool().Draw(t, "reopen") {
				c.Open(key)
				open, index = true, 0
			}
		}

		for _, state := range rec.renders {
			if state.StepNumber < 1 || state.StepNumber > state.TotalSteps {
				t.Fatalf("step %d outside 1..%d", state.StepNumber, state.TotalSteps)
			}
			if state.PrevDisabled != (state.StepNumber == 1) {
				t.Fatalf("prev disabled = %v on step %d", state.PrevDisabled, state.StepNumber)
			}
			if state.IsLast != (state.StepNumber == state.TotalSteps) {
				t.Fatalf("is last = %v on step %d of %d", state.IsLast, state.StepNumber, state.TotalSteps)
			}
		}
	})
}
