package walkthrough

import "fmt"

// RenderState is everything a presentation layer needs to draw one step
type RenderState struct {
	Key           string   `json:"key" yaml:"key"`
	TutorialTitle string   `json:"tutorial_title" yaml:"tutorial_title"`
	StepNumber    int      `json:"step_number" yaml:"step_number"` // 1-based
	TotalSteps    int      `json:"total_steps" yaml:"total_steps"`
	PrevDisabled  bool     `json:"prev_disabled" yaml:"prev_disabled"`
	NextLabel     string   `json:"next_label" yaml:"next_label"`
	IsLast        bool     `json:"is_last" yaml:"is_last"`
	StepTitle     string   `json:"step_title" yaml:"step_title"`
	Body          string   `json:"body" yaml:"body"`
	Instructions  []string `json:"instructions" yaml:"instructions"`
	Screenshot    string   `json:"screenshot" yaml:"screenshot"`
}

// Counter formats the step counter, e.g. "Step 2 of 4"
func (s RenderState) Counter() string {
	return fmt.Sprintf("Step %d of %d", s.StepNumber, s.TotalSteps)
}

// Caption is the alt text for the step screenshot
func (s RenderState) Caption() string {
	return fmt.Sprintf("Step %d - %s", s.StepNumber, s.TutorialTitle)
}
