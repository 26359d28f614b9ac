// Package chat реализует скриптованный виджет поддержки: четыре раздела
// быстрых вопросов, заготовленные ответы и передача «живому оператору»
// для всего остального.
package chat

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const defaultReplyDelay = 800 * time.Millisecond

// Role — автор сообщения в ленте.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message — одна запись в ленте диалога.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// ReplyObserver уведомляется о каждом ответе бота. scripted=false означает
// запасной ответ с передачей оператору.
type ReplyObserver func(scripted bool)

// Session — состояние одного диалога с ботом. Безопасна для
// конкурентного использования; ответы приходят асинхронно по таймеру.
type Session struct {
	mu         sync.Mutex
	messages   []Message
	activeMenu string
	replyDelay time.Duration
	observer   ReplyObserver
	timers     map[*time.Timer]struct{}
	closed     bool
	logger     *log.Entry
}

// SessionOption настраивает Session.
type SessionOption func(*Session)

// WithReplyDelay задаёт задержку ответа бота (в тестах — почти ноль).
func WithReplyDelay(delay time.Duration) SessionOption {
	return func(s *Session) {
		s.replyDelay = delay
	}
}

// WithReplyObserver подключает наблюдателя ответов (метрики).
func WithReplyObserver(observer ReplyObserver) SessionOption {
	return func(s *Session) {
		s.observer = observer
	}
}

// NewSession создаёт диалог с приветствием бота в ленте.
func NewSession(options ...SessionOption) *Session {
	s := &Session{
		messages:   []Message{{Role: RoleSystem, Text: greetingText}},
		replyDelay: defaultReplyDelay,
		timers:     make(map[*time.Timer]struct{}),
		logger:     log.WithField("component", "chat-session"),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Menus возвращает разделы панели самообслуживания в фиксированном порядке.
func (s *Session) Menus() []string {
	return append([]string(nil), menuOrder...)
}

// Options возвращает быстрые вопросы раздела. Неизвестный раздел — nil.
func (s *Session) Options(menu string) []string {
	return append([]string(nil), menuOptions[menu]...)
}

// ActiveMenu возвращает развёрнутый сейчас раздел; пустая строка — свёрнуто всё.
func (s *Session) ActiveMenu() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeMenu
}

// ToggleMenu разворачивает раздел либо сворачивает его при повторном
// нажатии. Развёрнут может быть только один раздел.
func (s *Session) ToggleMenu(menu string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeMenu == menu {
		s.activeMenu = ""
		return
	}
	s.activeMenu = menu
}

// Send добавляет сообщение пользователя в ленту и планирует ответ бота.
// Пустой ввод игнорируется, как и отправка после Close.
func (s *Session) Send(text string) {
	if text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.messages = append(s.messages, Message{Role: RoleUser, Text: text})

	reply, scripted := scriptedReplies[text]
	if !scripted {
		reply = fmt.Sprintf(fallbackReplyFormat, text)
	}

	// timer читается в колбэке только под мьютексом: запись происходит
	// под тем же мьютексом до возврата из Send.
	var timer *time.Timer
	timer = time.AfterFunc(s.replyDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.timers, timer)
		if s.closed {
			return
		}

		s.messages = append(s.messages, Message{Role: RoleSystem, Text: reply})
		s.logger.WithField("scripted", scripted).Debug("bot reply delivered")

		if s.observer != nil {
			s.observer(scripted)
		}
	})
	s.timers[timer] = struct{}{}
}

// Messages возвращает копию ленты диалога.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

// Close останавливает отложенные ответы. Сессия после этого не принимает
// новых сообщений.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for timer := range s.timers {
		timer.Stop()
	}
	s.timers = make(map[*time.Timer]struct{})
}
