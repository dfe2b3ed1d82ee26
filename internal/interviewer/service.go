package interviewer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"interview-practice/internal/domain"
	"interview-practice/internal/interview"
	"interview-practice/internal/ui"
)

// Команды, которые пользователь вводит вместо ответа
const (
	cmdSkip  = ":skip"
	cmdClear = ":clear"
	cmdBack  = ":back"
	cmdQuit  = ":quit"
)

// Exit описывает, чем закончился диалог
type Exit int

const (
	// ExitCompleted - все вопросы пройдены
	ExitCompleted Exit = iota
	// ExitBack - пользователь вернулся к выбору режима
	ExitBack
	// ExitQuit - пользователь прервал интервью или ввод закончился
	ExitQuit
)

// Service проводит интервью в терминале: читает ответы построчно,
// пустая строка отправляет накопленный ответ.
type Service struct {
	in  io.Reader
	out io.Writer

	once    sync.Once
	lines   chan string
	readErr error
}

// New создает новый сервис интервьюера
func New(in io.Reader, out io.Writer) *Service {
	return &Service{
		in:    in,
		out:   out,
		lines: make(chan string),
	}
}

// startReader запускает чтение ввода в отдельной горутине, чтобы ожидание
// строки можно было прервать через ctx. Канал закрывается в конце ввода.
func (s *Service) startReader() {
	s.once.Do(func() {
		go func() {
			scanner := bufio.NewScanner(s.in)
			scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
			for scanner.Scan() {
				s.lines <- scanner.Text()
			}
			s.readErr = scanner.Err()
			close(s.lines)
		}()
	})
}

// readLine ждет следующую строку ввода или отмену ctx.
// В конце ввода возвращает io.EOF.
func (s *Service) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.startReader()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			if s.readErr != nil {
				return "", fmt.Errorf("ошибка чтения ввода: %w", s.readErr)
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// Conduct проводит диалог с пользователем до завершения сессии или выхода
func (s *Service) Conduct(ctx context.Context, session *interview.Session) (Exit, error) {
	s.printHelp()

	asked := -1
	for {
		if session.State() == interview.StateTerminated {
			return ExitCompleted, nil
		}

		if idx := session.CurrentIndex(); idx != asked {
			question, ok := session.CurrentQuestion()
			if !ok {
				return ExitCompleted, nil
			}
			n, total := session.Progress()
			fmt.Fprint(s.out, ui.RenderQuestion(n, total, question))
			fmt.Fprintf(s.out, "⏱️  %s\n", ui.FormatElapsed(session.Elapsed()))
			asked = idx
		}

		// Читаем строку ответа
		line, err := s.readLine(ctx)
		switch {
		case ctx.Err() != nil:
			_ = session.Abandon()
			fmt.Fprintln(s.out, "\n👋 Interview interrupted")
			return ExitQuit, nil
		case errors.Is(err, io.EOF):
			_ = session.Abandon()
			return ExitQuit, nil
		case err != nil:
			_ = session.Abandon()
			return ExitQuit, err
		}

		switch strings.TrimSpace(line) {
		case cmdQuit:
			if err := session.Abandon(); err != nil {
				return ExitQuit, err
			}
			fmt.Fprintln(s.out, "👋 Interview abandoned")
			return ExitQuit, nil
		case cmdBack:
			return ExitBack, nil
		case cmdClear:
			session.Clear()
			fmt.Fprintln(s.out, "🧹 Draft cleared")
		case cmdSkip:
			if err := session.Skip(ctx); err != nil {
				return ExitQuit, fmt.Errorf("ошибка пропуска вопроса: %w", err)
			}
			fmt.Fprintln(s.out, "⏭️  Question skipped")
		case "":
			if err := s.submit(ctx, session); err != nil {
				return ExitQuit, err
			}
		default:
			session.AppendDraft(line)
		}
	}
}

func (s *Service) submit(ctx context.Context, session *interview.Session) error {
	err := session.Submit(ctx, session.Draft())
	switch {
	case errors.Is(err, interview.ErrEmptyAnswer):
		fmt.Fprintln(s.out, "✍️  Please type an answer, or :skip")
		return nil
	case errors.Is(err, interview.ErrReservedAnswer):
		session.Clear()
		fmt.Fprintf(s.out, "✍️  %q is reserved for skipped questions; use :skip instead\n", domain.SkipSentinel)
		return nil
	}
	if err != nil {
		return fmt.Errorf("ошибка отправки ответа: %w", err)
	}

	if feedback, ok := lastFeedback(session.Timeline()); ok {
		fmt.Fprintln(s.out, ui.RenderEntry(feedback))
	}
	return nil
}

func lastFeedback(timeline []domain.TimelineEntry) (domain.TimelineEntry, bool) {
	for i := len(timeline) - 1; i >= 0; i-- {
		if timeline[i].Kind == domain.KindFeedback {
			return timeline[i], true
		}
	}
	return domain.TimelineEntry{}, false
}

func (s *Service) printHelp() {
	fmt.Fprintln(s.out, "Type your answer; an empty line submits it.")
	fmt.Fprintf(s.out, "Commands: %s  %s  %s  %s\n", cmdSkip, cmdClear, cmdBack, cmdQuit)
}

// Confirm задает вопрос да/нет; конец ввода или отмена ctx считаются отказом
func (s *Service) Confirm(ctx context.Context, prompt string) bool {
	fmt.Fprintf(s.out, "%s [y/N] ", prompt)
	line, err := s.readLine(ctx)
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
