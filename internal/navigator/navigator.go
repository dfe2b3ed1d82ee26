package navigator

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"interview-practice/internal/domain"
	"interview-practice/internal/interview"
	"interview-practice/internal/questions"
)

// Screen представляет экран, на котором находится пользователь
type Screen string

const (
	ScreenRoleSelection Screen = "role-selection"
	ScreenModeSelection Screen = "mode-selection"
	ScreenInterview     Screen = "interview"
	ScreenSummary       Screen = "summary"
)

// ErrInvalidTransition - переход недопустим с текущего экрана
var ErrInvalidTransition = errors.New("недопустимый переход")

// Starter запускает сессии интервью
type Starter interface {
	Start(ctx context.Context, role, dom string, mode domain.Mode) (*interview.Session, error)
}

// Navigator ведет пользователя по экранам:
// выбор роли → выбор режима → интервью → итоги.
type Navigator struct {
	mu      sync.Mutex
	starter Starter

	screen  Screen
	role    string
	domain  string
	mode    domain.Mode
	session *interview.Session
	result  *domain.SessionResult
}

func New(starter Starter) *Navigator {
	return &Navigator{
		starter: starter,
		screen:  ScreenRoleSelection,
	}
}

// SelectRole запоминает роль и направление и переходит к выбору режима
func (n *Navigator) SelectRole(roleID, dom string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.expect(ScreenRoleSelection); err != nil {
		return err
	}
	role, err := questions.FindRole(roleID)
	if err != nil {
		return err
	}
	if dom != "" && !slices.Contains(role.Domains, dom) {
		return fmt.Errorf("направление %q не относится к роли %s", dom, role.Title)
	}

	n.role = role.ID
	n.domain = dom
	n.screen = ScreenModeSelection
	return nil
}

// SelectMode запускает сессию в выбранном режиме
func (n *Navigator) SelectMode(ctx context.Context, mode domain.Mode) (*interview.Session, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.expect(ScreenModeSelection); err != nil {
		return nil, err
	}
	session, err := n.starter.Start(ctx, n.role, n.domain, mode)
	if err != nil {
		return nil, fmt.Errorf("ошибка запуска интервью: %w", err)
	}

	n.mode = mode
	n.session = session
	n.screen = ScreenInterview
	return session, nil
}

// Complete переводит завершенную сессию на экран итогов
func (n *Navigator) Complete() (domain.SessionResult, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if err := n.expect(ScreenInterview); err != nil {
		return domain.SessionResult{}, err
	}
	outcome, err := n.session.Outcome()
	if err != nil {
		return domain.SessionResult{}, err
	}

	result := outcome.Summarize()
	n.result = &result
	n.screen = ScreenSummary
	return result, nil
}

// Back возвращает на предыдущий экран. Уход с интервью прерывает сессию.
func (n *Navigator) Back() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch n.screen {
	case ScreenModeSelection:
		n.screen = ScreenRoleSelection
	case ScreenInterview:
		n.abandon()
		n.session = nil
		n.screen = ScreenModeSelection
	default:
		return fmt.Errorf("назад с экрана %s: %w", n.screen, ErrInvalidTransition)
	}
	return nil
}

// NewInterview сбрасывает выбор и возвращает к выбору роли
func (n *Navigator) NewInterview() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.abandon()
	n.role = ""
	n.domain = ""
	n.mode = ""
	n.session = nil
	n.result = nil
	n.screen = ScreenRoleSelection
}

// abandon вызывается под n.mu
func (n *Navigator) abandon() {
	if n.session == nil || n.session.State() != interview.StateActive {
		return
	}
	_ = n.session.Abandon()
}

func (n *Navigator) expect(screen Screen) error {
	if n.screen != screen {
		return fmt.Errorf("экран %s, ожидался %s: %w", n.screen, screen, ErrInvalidTransition)
	}
	return nil
}

func (n *Navigator) Screen() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.screen
}

// Selection возвращает выбранные роль, направление и режим
func (n *Navigator) Selection() (role, dom string, mode domain.Mode) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.role, n.domain, n.mode
}

func (n *Navigator) Session() *interview.Session {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.session
}

// Result возвращает итог последней сессии, если пользователь на экране итогов
func (n *Navigator) Result() (domain.SessionResult, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.result == nil {
		return domain.SessionResult{}, false
	}
	return *n.result, true
}
