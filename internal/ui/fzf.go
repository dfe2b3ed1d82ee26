package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/koki-develop/go-fzf"

	"interview-practice/internal/domain"
	"interview-practice/internal/questions"
)

// ErrCancelled - пользователь закрыл список без выбора
var ErrCancelled = errors.New("выбор отменен")

// selectOne показывает fuzzy finder и возвращает индекс выбранного элемента
func selectOne(prompt string, n int, line func(i int) string, preview func(i int) string) (int, error) {
	if n == 0 {
		return 0, fmt.Errorf("список пуст")
	}

	f, err := fzf.New(
		fzf.WithPrompt(prompt),
		fzf.WithInputPosition(fzf.InputPositionTop),
		fzf.WithLimit(1),
	)
	if err != nil {
		return 0, err
	}

	items := make([]int, n)
	opts := []fzf.FindOption{}
	if preview != nil {
		opts = append(opts, fzf.WithPreviewWindow(func(i, w, h int) string {
			if i < 0 || i >= n {
				return ""
			}
			return preview(i)
		}))
	}

	idxs, err := f.Find(items, line, opts...)
	if errors.Is(err, fzf.ErrAbort) {
		return 0, ErrCancelled
	}
	if err != nil {
		return 0, err
	}
	if len(idxs) == 0 {
		return 0, ErrCancelled
	}
	return idxs[0], nil
}

// SelectRole предлагает выбрать роль
func SelectRole(roles []questions.Role) (questions.Role, error) {
	i, err := selectOne("Role > ", len(roles),
		func(i int) string {
			return fmt.Sprintf("%-20s  %s", roles[i].Title, strings.Join(roles[i].Domains, ", "))
		},
		nil,
	)
	if err != nil {
		return questions.Role{}, err
	}
	return roles[i], nil
}

// SelectDomain предлагает выбрать направление внутри роли
func SelectDomain(role questions.Role) (string, error) {
	i, err := selectOne(role.Title+" / Domain > ", len(role.Domains),
		func(i int) string { return role.Domains[i] },
		nil,
	)
	if err != nil {
		return "", err
	}
	return role.Domains[i], nil
}

// SelectMode предлагает выбрать режим с описанием в окне предпросмотра
func SelectMode(modes []questions.ModeInfo) (domain.Mode, error) {
	i, err := selectOne("Mode > ", len(modes),
		func(i int) string { return modes[i].Title },
		func(i int) string { return formatModePreview(modes[i]) },
	)
	if err != nil {
		return "", err
	}
	return modes[i].Mode, nil
}

func formatModePreview(m questions.ModeInfo) string {
	var b strings.Builder

	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	b.WriteString(fmt.Sprintf("%s\n", m.Title))
	b.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")
	b.WriteString(fmt.Sprintf("%s\n\n", m.Description))
	for _, f := range m.Features {
		b.WriteString(fmt.Sprintf("• %s\n", f))
	}

	return b.String()
}
