package questions

import (
	"interview-practice/internal/domain"
)

// Source показывает, на каком шаге цепочки fallback был найден список вопросов
type Source string

const (
	SourceDomain  Source = "domain"
	SourceRole    Source = "role"
	SourceGeneric Source = "generic"
)

// RoleQuestions содержит вопросы роли: общий список и/или списки по доменам
type RoleQuestions struct {
	Questions []string            `yaml:"questions,omitempty"`
	Domains   map[string][]string `yaml:"domains,omitempty"`
}

// ModeBank содержит банк вопросов одного режима интервью
type ModeBank struct {
	Generic []string                 `yaml:"generic"`
	Roles   map[string]RoleQuestions `yaml:"roles"`
}

// Bank - статический банк вопросов с ключами (режим, роль[, домен])
type Bank struct {
	modes map[domain.Mode]ModeBank
}

// Selection - результат поиска: вопросы и шаг цепочки, на котором они найдены
type Selection struct {
	Questions []string
	Source    Source
}

// NewBank создает банк из готовых списков по режимам
func NewBank(modes map[domain.Mode]ModeBank) *Bank {
	return &Bank{modes: modes}
}

// Resolve возвращает упорядоченный список вопросов для (role, domain, mode).
// Функция тотальна: при промахе применяется цепочка domain → role → generic.
func (b *Bank) Resolve(role, dom string, mode domain.Mode) []string {
	return b.Lookup(role, dom, mode).Questions
}

// Lookup выполняет поиск с явной цепочкой fallback и сообщает источник
func (b *Bank) Lookup(role, dom string, mode domain.Mode) Selection {
	modeBank, ok := b.modes[mode]
	if !ok {
		// Режим вне банка возможен только для невалидного Mode
		return Selection{Questions: clone(technicalGeneric), Source: SourceGeneric}
	}

	if list, ok := b.domainList(modeBank, role, dom); ok {
		return Selection{Questions: clone(list), Source: SourceDomain}
	}

	if list, ok := b.roleList(modeBank, role); ok {
		return Selection{Questions: clone(list), Source: SourceRole}
	}

	return Selection{Questions: clone(modeBank.Generic), Source: SourceGeneric}
}

// domainList - шаг 1: список вопросов по домену для доменно-зависимой роли
func (b *Bank) domainList(modeBank ModeBank, role, dom string) ([]string, bool) {
	rq, ok := modeBank.Roles[role]
	if !ok || len(rq.Domains) == 0 {
		return nil, false
	}
	list, ok := rq.Domains[dom]
	if !ok || len(list) == 0 {
		return nil, false
	}
	return list, true
}

// roleList - шаг 2: общий список роли без учета домена
func (b *Bank) roleList(modeBank ModeBank, role string) ([]string, bool) {
	rq, ok := modeBank.Roles[role]
	if !ok || len(rq.Questions) == 0 {
		return nil, false
	}
	return rq.Questions, true
}

// DomainSensitive сообщает, разбиты ли вопросы роли по доменам в данном режиме
func (b *Bank) DomainSensitive(role string, mode domain.Mode) bool {
	rq, ok := b.modes[mode].Roles[role]
	return ok && len(rq.Domains) > 0
}

func clone(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
