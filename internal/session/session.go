// Package session implements the live chat session: the ordered message log
// of one open chat, the Idle/Responding state machine that guards completion
// requests, and the one-shot initial prompt handed over by navigation.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	app_errors "chatbuilder/backend/internal/errors"
	"chatbuilder/backend/internal/llm"
	"chatbuilder/backend/internal/model"
)

// State of a session. There is no terminal state.
type State int

const (
	Idle State = iota
	Responding
)

func (s State) String() string {
	if s == Responding {
		return "responding"
	}
	return "idle"
}

// Submission rejections. They never change the session.
var (
	ErrEmptyPrompt     = fmt.Errorf("%w: prompt is empty", app_errors.ErrValidation)
	ErrNoModelSelected = fmt.Errorf("%w: no model selected", app_errors.ErrValidation)
	ErrResponding      = fmt.Errorf("%w: a response is already in progress", app_errors.ErrConflict)
)

// IsRejection reports whether err is one of the submission rejections.
func IsRejection(err error) bool {
	return errors.Is(err, ErrEmptyPrompt) || errors.Is(err, ErrNoModelSelected) || errors.Is(err, ErrResponding)
}

// Texts of assistant messages appended when a turn fails.
const (
	GenericFailureText = "An error occurred while processing your request."
	EmptyReplyText     = "Error: Failed to get response from AI."
	CancelledText      = "Response cancelled."
	TimeoutText        = "Error: the completion backend did not respond in time."
)

// Dispatcher sends a full message log to the completion backend.
type Dispatcher interface {
	Dispatch(ctx context.Context, messages []model.Message, modelID string) (string, error)
}

// Observer is told about every appended message, in append order. It is
// called with the session lock held and must not call back into the session.
type Observer interface {
	MessageAppended(ctx context.Context, chatID, userID string, msg model.Message)
}

// Turn is one user message and the assistant message that resolved it.
type Turn struct {
	User   model.Message `json:"user"`
	Reply  model.Message `json:"reply"`
	Failed bool          `json:"failed"`
}

type Option func(*Session)

// WithTimeout bounds every dispatch. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) { s.timeout = d }
}

func WithObserver(o Observer) Option {
	return func(s *Session) { s.observer = o }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Session) { s.newID = newID }
}

// turnTracker is told when a turn starts and after its reply is recorded.
type turnTracker interface {
	turnStarted(s *Session)
	turnFinished(s *Session)
}

func withTurnTracker(t turnTracker) Option {
	return func(s *Session) { s.tracker = t }
}

type Session struct {
	mu sync.Mutex

	chatID string
	userID string

	messages []model.Message
	state    State
	settings *model.ModelSettings

	pendingInitialPrompt string
	initialConsumed      bool

	cancel    context.CancelFunc
	cancelled bool

	lastActive time.Time

	dispatcher Dispatcher
	observer   Observer
	tracker    turnTracker
	timeout    time.Duration
	now        func() time.Time
	newID      func() string
	logger     *slog.Logger
}

// New creates an Idle session for chatID. A non-blank initialPrompt is kept
// pending until ConsumeInitialPrompt can fire it.
func New(chatID, userID, initialPrompt string, dispatcher Dispatcher, opts ...Option) *Session {
	s := &Session{
		chatID:               chatID,
		userID:               userID,
		messages:             []model.Message{},
		pendingInitialPrompt: strings.TrimSpace(initialPrompt),
		dispatcher:           dispatcher,
		now:                  time.Now,
		newID:                uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastActive = s.now()
	s.logger = slog.Default().With("chat_id", chatID)
	return s
}

func (s *Session) ChatID() string { return s.chatID }
func (s *Session) UserID() string { return s.userID }

// ApplySettings records freshly loaded model settings. Until the first call
// the session treats settings as still loading.
func (s *Session) ApplySettings(settings model.ModelSettings) {
	normalized := settings.Normalize()
	s.mu.Lock()
	s.settings = &normalized
	s.mu.Unlock()
}

// Restore seeds an empty, idle session with previously stored messages. The
// observer is not told about them. It reports whether the log was seeded.
func (s *Session) Restore(messages []model.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(messages) == 0 || len(s.messages) > 0 || s.state != Idle {
		return false
	}
	s.messages = slices.Clone(messages)
	return true
}

// ConsumeInitialPrompt fires the pending initial prompt once settings are
// loaded and a model is selected. It returns nil when nothing was dispatched;
// calling it again after the prompt fired is a no-op.
func (s *Session) ConsumeInitialPrompt(ctx context.Context) *Turn {
	s.mu.Lock()
	if s.initialConsumed || s.pendingInitialPrompt == "" {
		s.mu.Unlock()
		return nil
	}
	if len(s.messages) > 0 {
		s.dropInitialPromptLocked()
		s.mu.Unlock()
		s.logger.Info("Discarded initial prompt, chat already has messages")
		return nil
	}
	if s.settings == nil || s.settings.SelectedModel == nil {
		s.mu.Unlock()
		s.logger.Debug("Initial prompt waiting for a selected model")
		return nil
	}

	prompt := s.pendingInitialPrompt
	s.dropInitialPromptLocked()
	s.logger.Info("Dispatching initial prompt")
	t := s.beginTurnLocked(ctx, prompt)
	s.mu.Unlock()

	return s.runTurn(t)
}

// Submit appends text as a user message and dispatches the whole log. It
// blocks until the turn resolves. Empty text, a turn already in flight, or no
// selected model are rejected without touching the session.
func (s *Session) Submit(ctx context.Context, text string) (*Turn, error) {
	prompt := strings.TrimSpace(text)

	s.mu.Lock()
	if err := s.checkSubmitLocked(prompt); err != nil {
		s.mu.Unlock()
		s.logger.Warn("Submission rejected", "reason", err.Error())
		return nil, err
	}
	if !s.initialConsumed && s.pendingInitialPrompt != "" {
		s.dropInitialPromptLocked()
	}
	t := s.beginTurnLocked(ctx, prompt)
	s.mu.Unlock()

	return s.runTurn(t), nil
}

// Cancel aborts the in-flight dispatch. The turn still resolves through the
// dispatcher and leaves a cancellation marker in the log.
func (s *Session) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Responding || s.cancel == nil {
		return false
	}
	s.cancelled = true
	s.cancel()
	s.logger.Info("Cancelled in-flight completion")
	return true
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) IsResponding() bool {
	return s.State() == Responding
}

// Snapshot returns a copy of the session that the caller may keep.
func (s *Session) Snapshot() model.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.SessionSnapshot{
		ChatID:           s.chatID,
		Messages:         slices.Clone(s.messages),
		IsResponding:     s.state == Responding,
		HasPendingPrompt: !s.initialConsumed && s.pendingInitialPrompt != "",
	}
}

// idleFor reports how long the session has been idle. A responding session
// is never idle.
func (s *Session) idleFor(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Responding {
		return 0
	}
	return now.Sub(s.lastActive)
}

func (s *Session) touch() {
	s.mu.Lock()
	s.lastActive = s.now()
	s.mu.Unlock()
}

func (s *Session) checkSubmitLocked(prompt string) error {
	switch {
	case prompt == "":
		return ErrEmptyPrompt
	case s.state == Responding:
		return ErrResponding
	case s.settings == nil || s.settings.SelectedModel == nil:
		return ErrNoModelSelected
	}
	return nil
}

func (s *Session) dropInitialPromptLocked() {
	s.initialConsumed = true
	s.pendingInitialPrompt = ""
}

type pendingTurn struct {
	ctx       context.Context
	notifyCtx context.Context
	user      model.Message
	history   []model.Message
	modelID   string
}

// beginTurnLocked performs the Idle -> Responding transition.
func (s *Session) beginTurnLocked(ctx context.Context, prompt string) pendingTurn {
	detached := context.WithoutCancel(ctx)

	var (
		dispatchCtx context.Context
		cancel      context.CancelFunc
	)
	if s.timeout > 0 {
		dispatchCtx, cancel = context.WithTimeout(detached, s.timeout)
	} else {
		dispatchCtx, cancel = context.WithCancel(detached)
	}

	userMsg := s.newMessage(model.SenderUser, prompt)
	s.messages = append(s.messages, userMsg)
	s.state = Responding
	s.cancel = cancel
	s.cancelled = false
	s.lastActive = s.now()
	if s.tracker != nil {
		s.tracker.turnStarted(s)
	}
	s.notifyLocked(detached, userMsg)

	return pendingTurn{
		ctx:       dispatchCtx,
		notifyCtx: detached,
		user:      userMsg,
		history:   slices.Clone(s.messages),
		modelID:   *s.settings.SelectedModel,
	}
}

// runTurn dispatches outside the lock and performs Responding -> Idle.
func (s *Session) runTurn(t pendingTurn) *Turn {
	if s.tracker != nil {
		defer s.tracker.turnFinished(s)
	}
	started := s.now()
	text, err := s.dispatch(t.ctx, t.history, t.modelID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	content := text
	if err != nil {
		content = failureText(err, s.cancelled)
		s.logger.Warn("Completion failed", "model", t.modelID, "error", err, "cancelled", s.cancelled)
	} else {
		s.logger.Info("Completion succeeded", "model", t.modelID, "duration", s.now().Sub(started))
	}

	reply := s.newMessage(model.SenderAssistant, content)
	s.messages = append(s.messages, reply)
	s.state = Idle
	s.cancel = nil
	s.cancelled = false
	s.lastActive = s.now()
	s.notifyLocked(t.notifyCtx, reply)

	return &Turn{User: t.user, Reply: reply, Failed: err != nil}
}

func (s *Session) dispatch(ctx context.Context, history []model.Message, modelID string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Completion dispatch panicked", "panic", r)
			err = fmt.Errorf("%w: dispatch panicked: %v", app_errors.ErrInternal, r)
		}
	}()
	return s.dispatcher.Dispatch(ctx, history, modelID)
}

func (s *Session) notifyLocked(ctx context.Context, msg model.Message) {
	if s.observer != nil {
		s.observer.MessageAppended(ctx, s.chatID, s.userID, msg)
	}
}

func (s *Session) newMessage(sender model.Sender, content string) model.Message {
	return model.Message{
		ID:        s.newID(),
		Sender:    sender,
		Content:   content,
		CreatedAt: s.now(),
	}
}

// failureText converts a failed dispatch into the assistant message shown to
// the user.
func failureText(err error, cancelled bool) string {
	var backendErr *llm.BackendError
	switch {
	case cancelled:
		return CancelledText
	case errors.Is(err, context.DeadlineExceeded):
		return TimeoutText
	case errors.As(err, &backendErr):
		return "Error: " + backendErr.Reason
	case errors.Is(err, llm.ErrEmptyResponse):
		return EmptyReplyText
	default:
		return GenericFailureText
	}
}
