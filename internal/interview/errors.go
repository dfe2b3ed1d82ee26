package interview

import "errors"

var (
	// ErrEmptyAnswer - ответ пуст или состоит только из пробелов
	ErrEmptyAnswer = errors.New("ответ не может быть пустым")

	// ErrReservedAnswer - ответ совпадает с меткой пропущенного вопроса
	ErrReservedAnswer = errors.New("ответ совпадает с меткой пропуска")

	// ErrSessionTerminated - все вопросы пройдены, переходы больше невозможны
	ErrSessionTerminated = errors.New("сессия уже завершена")

	// ErrSessionAbandoned - сессия прервана пользователем
	ErrSessionAbandoned = errors.New("сессия прервана")

	// ErrTransitionInFlight - предыдущий переход еще не завершен
	ErrTransitionInFlight = errors.New("предыдущий ответ еще обрабатывается")

	// ErrNotTerminated - итог запрошен до завершения сессии
	ErrNotTerminated = errors.New("сессия еще не завершена")

	// ErrNoQuestions - источник вопросов вернул пустой список
	ErrNoQuestions = errors.New("список вопросов пуст")
)

// IsInvalidState сообщает, относится ли ошибка к недопустимому переходу
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrSessionTerminated) ||
		errors.Is(err, ErrSessionAbandoned) ||
		errors.Is(err, ErrTransitionInFlight)
}
