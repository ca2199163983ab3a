// Package walkthrough drives a single tutorial walkthrough: which tutorial
// is open, which step is active, and what should be on screen.
//
// A Controller is either closed or open on one tutorial at one step. All
// transitions are synchronous and the controller is not safe for concurrent
// use; each consumer (a TUI program, an HTTP request) owns its own.
package walkthrough

import (
	"github.com/ventiq/ventiq-terminal/pkg/debug"
	"github.com/ventiq/ventiq-terminal/pkg/models"
)

// Presenter draws render states. Render is called on every transition into
// an open state, Hide on every transition to closed.
type Presenter interface {
	Render(state RenderState)
	Hide()
}

// Notifier receives the completion signal, emitted only when the user
// moves past the last step
type Notifier interface {
	TutorialCompleted(key, title string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(key, title string)

// TutorialCompleted calls f(key, title)
func (f NotifierFunc) TutorialCompleted(key, title string) {
	f(key, title)
}

// Session is the state of an open walkthrough. The tutorial is borrowed
// from the catalog.
type Session struct {
	Key      string
	Tutorial *models.Tutorial
	Index    int
}

// Transition reports what an operation did
type Transition int

const (
	Ignored Transition = iota
	Advanced
	Retreated
	Completed
	Closed
)

func (t Transition) String() string {
	switch t {
	case Advanced:
		return "advanced"
	case Retreated:
		return "retreated"
	case Completed:
		return "completed"
	case Closed:
		return "closed"
	default:
		return "ignored"
	}
}

// Option configures a Controller
type Option func(*Controller)

// WithPresenter sets the presentation collaborator
func WithPresenter(p Presenter) Option {
	return func(c *Controller) {
		c.presenter = p
	}
}

// WithNotifier sets the completion collaborator
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		c.notifier = n
	}
}

// WithLabels overrides the next/finish button labels
func WithLabels(labels models.LabelSettings) Option {
	return func(c *Controller) {
		if labels.Next != "" {
			c.labels.Next = labels.Next
		}
		if labels.Finish != "" {
			c.labels.Finish = labels.Finish
		}
	}
}

// Controller is the tutorial walkthrough state machine
type Controller struct {
	catalog   *models.Catalog
	resolver  *ScreenshotResolver
	labels    models.LabelSettings
	presenter Presenter
	notifier  Notifier

	session *Session
}

// NewController creates a closed controller over a catalog
func NewController(catalog *models.Catalog, resolver *ScreenshotResolver, opts ...Option) *Controller {
	if resolver == nil {
		resolver = NewScreenshotResolver(nil, models.AssetSettings{})
	}
	c := &Controller{
		catalog:  catalog,
		resolver: resolver,
		labels:   models.DefaultSettings().Labels,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open starts a walkthrough of the tutorial with the given key at its first
// step, replacing any open session. An unknown key is a catalog/caller
// mismatch, not a user error: Open does nothing and returns false.
func (c *Controller) Open(key string) bool {
	tutorial, ok := c.catalog.Get(key)
	if !ok || len(tutorial.Steps) == 0 {
		debug.Log("walkthrough: ignoring open of unknown tutorial %q", key)
		return false
	}

	c.session = &Session{Key: key, Tutorial: tutorial}
	c.render()
	return true
}

// Next advances one step. On the last step it closes the walkthrough and
// emits the completion signal.
func (c *Controller) Next() Transition {
	if c.session == nil {
		return Ignored
	}

	if c.session.Index < len(c.session.Tutorial.Steps)-1 {
		c.session.Index++
		c.render()
		return Advanced
	}

	key, title := c.session.Key, c.session.Tutorial.Title
	c.close()
	if c.notifier != nil {
		c.notifier.TutorialCompleted(key, title)
	}
	return Completed
}

// Previous goes back one step. It does nothing on the first step.
func (c *Controller) Previous() Transition {
	if c.session == nil || c.session.Index == 0 {
		return Ignored
	}
	c.session.Index--
	c.render()
	return Retreated
}

// Close dismisses the walkthrough without completing it
func (c *Controller) Close() Transition {
	if c.session == nil {
		return Ignored
	}
	c.close()
	return Closed
}

// Dispatch applies a navigation action
func (c *Controller) Dispatch(action Action) Transition {
	switch action {
	case ActionNext:
		return c.Next()
	case ActionPrevious:
		return c.Previous()
	case ActionClose:
		return c.Close()
	default:
		return Ignored
	}
}

// StepTo opens key and advances to the 1-based step n. It is used by
// stateless consumers that address steps directly. Like Open, it returns
// false and leaves the current session untouched when the key is unknown
// or n is out of range.
func (c *Controller) StepTo(key string, n int) bool {
	t, ok := c.catalog.Get(key)
	if !ok || n < 1 || n > len(t.Steps) {
		debug.Log("walkthrough: ignoring step %d of tutorial %q", n, key)
		return false
	}
	if !c.Open(key) {
		return false
	}
	for i := 1; i < n; i++ {
		c.Next()
	}
	return true
}

// IsOpen reports whether a walkthrough is in progress
func (c *Controller) IsOpen() bool {
	return c.session != nil
}

// Session returns a copy of the current session
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// State returns the render state of the current step
func (c *Controller) State() (RenderState, bool) {
	if c.session == nil {
		return RenderState{}, false
	}
	return c.buildState(), true
}

// Resolver returns the screenshot resolver used for render states
func (c *Controller) Resolver() *ScreenshotResolver {
	return c.resolver
}

func (c *Controller) close() {
	c.session = nil
	if c.presenter != nil {
		c.presenter.Hide()
	}
}

func (c *Controller) render() {
	if c.presenter != nil {
		c.presenter.Render(c.buildState())
	}
}

func (c *Controller) buildState() RenderState {
	s := c.session
	t := s.Tutorial
	step := t.Steps[s.Index]
	last := s.Index == len(t.Steps)-1

	nextLabel := c.labels.Next
	if last {
		nextLabel = c.labels.Finish
	}

	instructions := make([]string, len(step.Instructions))
	copy(instructions, step.Instructions)

	return RenderState{
		Key:           s.Key,
		TutorialTitle: t.Title,
		StepNumber:    s.Index + 1,
		TotalSteps:    len(t.Steps),
		PrevDisabled:  s.Index == 0,
		NextLabel:     nextLabel,
		IsLast:        last,
		StepTitle:     step.Title,
		Body:          step.Body,
		Instructions:  instructions,
		Screenshot:    c.resolver.Resolve(t.Title, s.Index),
	}
}
