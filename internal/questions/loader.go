package questions

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"interview-practice/internal/domain"
)

// LoadFile загружает банк вопросов из YAML файла
func LoadFile(filename string) (*Bank, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", filename, err)
	}

	bank, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("банк вопросов %s: %w", filename, err)
	}
	return bank, nil
}

// Parse разбирает банк вопросов из YAML и валидирует его
func Parse(data []byte) (*Bank, error) {
	var raw map[string]ModeBank
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ошибка парсинга YAML: %w", err)
	}

	modes := make(map[domain.Mode]ModeBank, len(raw))
	for key, mb := range raw {
		mode, err := domain.ParseMode(key)
		if err != nil {
			return nil, err
		}
		if _, dup := modes[mode]; dup {
			return nil, fmt.Errorf("режим %s указан в банке вопросов несколько раз", mode)
		}
		modes[mode] = mb
	}

	if err := validateBank(modes); err != nil {
		return nil, fmt.Errorf("ошибка валидации банка вопросов: %w", err)
	}

	return NewBank(modes), nil
}

// validateBank проверяет, что у каждого режима есть общий список
// и что ни один список вопросов не пуст
func validateBank(modes map[domain.Mode]ModeBank) error {
	for _, mode := range []domain.Mode{domain.ModeTechnical, domain.ModeBehavioral} {
		mb, ok := modes[mode]
		if !ok {
			return fmt.Errorf("режим %s отсутствует", mode)
		}
		if len(mb.Generic) == 0 {
			return fmt.Errorf("режим %s должен иметь generic вопросы", mode)
		}

		for role, rq := range mb.Roles {
			if len(rq.Questions) == 0 && len(rq.Domains) == 0 {
				return fmt.Errorf("роль %s (%s) не содержит вопросов", role, mode)
			}
			for dom, list := range rq.Domains {
				if len(list) == 0 {
					return fmt.Errorf("домен %s роли %s (%s) не содержит вопросов", dom, role, mode)
				}
			}
		}
	}
	return nil
}
