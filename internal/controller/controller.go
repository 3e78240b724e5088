// Package controller owns the budget report request lifecycle: it holds the
// pending user identifier, issues at most one report request at a time and
// exposes the resulting state and category snapshot to a presentation layer.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-report/internal/logging"
	"github.com/carson-networks/budget-report/internal/reportclient"
	"github.com/carson-networks/budget-report/internal/visualization"
)

// FallbackMessage is shown when a failure carries no backend detail.
const FallbackMessage = "Failed to generate budget plan"

// ReportRequester issues the outbound report request.
type ReportRequester interface {
	GenerateBudgetPlan(ctx context.Context, userID string) (string, error)
}

// CategoryProvider supplies the category amounts shown next to a report.
type CategoryProvider interface {
	Categories(ctx context.Context, userID string) ([]visualization.CategoryAmount, error)
}

type Controller struct {
	requester ReportRequester
	provider  CategoryProvider
	logger    *logrus.Logger
	timeout   time.Duration

	mu          sync.Mutex
	userID      string
	state       RequestState
	snapshot    []visualization.CategoryAmount
	subscribers map[int]chan RequestState
	nextSubID   int
	inflight    sync.WaitGroup
}

type Option func(*Controller)

// WithCategoryProvider sets the source of the per-cycle category snapshot.
// Without one every report is shown with an empty breakdown.
func WithCategoryProvider(provider CategoryProvider) Option {
	return func(c *Controller) {
		c.provider = provider
	}
}

// WithTimeout bounds each outbound request. Zero, the default, means the
// controller waits for the backend indefinitely.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Controller) {
		c.timeout = timeout
	}
}

// WithUserIdentifier sets the initial identifier.
func WithUserIdentifier(userID string) Option {
	return func(c *Controller) {
		c.userID = userID
	}
}

func New(requester ReportRequester, logger *logrus.Logger, opts ...Option) *Controller {
	c := &Controller{
		requester:   requester,
		logger:      logger,
		subscribers: make(map[int]chan RequestState),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUserIdentifier updates the identifier sent with the next request. Any
// string, including the empty one, is accepted.
func (c *Controller) SetUserIdentifier(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userID = value
}

func (c *Controller) UserIdentifier() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userID
}

func (c *Controller) State() RequestState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Loading() bool {
	return c.State().Loading()
}

// Categories returns a copy of the current cycle's category snapshot.
func (c *Controller) Categories() []visualization.CategoryAmount {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]visualization.CategoryAmount(nil), c.snapshot...)
}

// View selects the panel for the current state and, for a successful
// report, derives the breakdown from the cycle's snapshot.
func (c *Controller) View() View {
	c.mu.Lock()
	state := c.state
	userID := c.userID
	snapshot := c.snapshot
	c.mu.Unlock()

	view := View{
		Panel:  panelFor(state.Status),
		UserID: userID,
		State:  state,
	}
	if state.Status == StatusSuccess {
		breakdown := visualization.Build(snapshot)
		view.Breakdown = &breakdown
	}
	return view
}

// Submit starts a report cycle. It returns false without doing anything when
// a request is already in flight. Otherwise the state is Loading by the time
// Submit returns and the request runs in the background; its outcome is
// observed through State, View or Subscribe.
//
// The request is detached from ctx's cancellation: only the configured
// timeout can end it early.
func (c *Controller) Submit(ctx context.Context) bool {
	c.mu.Lock()
	if c.state.Loading() {
		inflightID := c.state.CycleID
		c.mu.Unlock()
		c.logger.WithField("cycleID", inflightID.String()).Debug("Controller.Submit.already loading")
		return false
	}

	cycleID := uuid.Must(uuid.NewV4())
	userID := c.userID
	c.snapshot = nil
	c.transitionLocked(event{kind: eventSubmitted, cycleID: cycleID})
	c.inflight.Add(1)
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{
		"cycleID": cycleID.String(),
		"userID":  userID,
	}).Info("Controller.Submit.Start")

	go c.run(context.WithoutCancel(ctx), cycleID, userID)
	return true
}

// Wait blocks until no request is in flight.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// Subscribe returns a channel that receives the current state immediately
// and every later state. Slow readers only ever miss intermediate states, the
// newest one is always delivered. The returned func unsubscribes and closes
// the channel.
func (c *Controller) Subscribe() (<-chan RequestState, func()) {
	ch := make(chan RequestState, 1)

	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = ch
	ch <- c.state
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subscribers, id)
			close(ch)
		})
	}
}

func (c *Controller) run(ctx context.Context, cycleID uuid.UUID, userID string) {
	defer c.inflight.Done()

	logData := logging.NewLogData(c.logger)
	logData.AddData("cycleID", cycleID.String())
	logData.AddData("userID", userID)

	result := event{kind: eventFailed, cycleID: cycleID, message: FallbackMessage}
	var snapshot []visualization.CategoryAmount

	endTimer := logData.AddTiming("cycleMs")
	defer func() {
		if r := recover(); r != nil {
			result = event{kind: eventFailed, cycleID: cycleID, message: FallbackMessage}
			logData.AddData("panic", fmt.Sprint(r))
		}
		endTimer()
		state := c.settle(result, snapshot)
		logData.AddData("status", state.Status.String())
		if state.Status == StatusFailure {
			logData.AddData("message", state.Message)
		}
		logData.Log().Info("Controller.Submit.Complete")
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endRequestTimer := logData.AddTiming("requestMs")
	report, err := c.requester.GenerateBudgetPlan(ctx, userID)
	endRequestTimer()
	if err != nil {
		logData.AddData("error", err.Error())
		result.message = failureMessage(err)
		return
	}

	snapshot = c.loadCategories(ctx, userID, logData)
	result = event{kind: eventSucceeded, cycleID: cycleID, report: report}
}

func (c *Controller) loadCategories(ctx context.Context, userID string, logData *logging.LogData) []visualization.CategoryAmount {
	if c.provider == nil {
		return nil
	}

	stop := logData.AddTiming("categoriesMs")
	items, err := c.provider.Categories(ctx, userID)
	stop()
	if err != nil {
		c.logger.WithError(err).WithField("userID", userID).Warn("Controller.loadCategories.provider failed")
		return nil
	}
	logData.AddData("categoryCount", len(items))
	return append([]visualization.CategoryAmount(nil), items...)
}

// settle applies the cycle's outcome. The Loading state is always left here,
// whatever path run took.
func (c *Controller) settle(result event, snapshot []visualization.CategoryAmount) RequestState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if result.kind == eventSucceeded && c.state.Loading() && c.state.CycleID == result.cycleID {
		c.snapshot = snapshot
	}
	c.transitionLocked(result)
	return c.state
}

func (c *Controller) transitionLocked(e event) {
	next := c.state.apply(e)
	if next == c.state {
		return
	}
	c.state = next
	for _, ch := range c.subscribers {
		publish(ch, next)
	}
}

func publish(ch chan RequestState, state RequestState) {
	select {
	case ch <- state:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- state:
	default:
	}
}

func failureMessage(err error) string {
	var backendErr *reportclient.BackendError
	if errors.As(err, &backendErr) && backendErr.Detail != "" {
		return backendErr.Detail
	}
	return FallbackMessage
}
