package answers

const (
	Start = "Привет! Бот следит за статусом проверки домашних работ в Практикуме " +
		"и присылает уведомление, когда ревьюер выносит вердикт. Информация – /help."

	Help = "Бот раз в несколько минут опрашивает API Практикума и сообщает, " +
		"когда статус проверки домашней работы меняется.\n\n" +
		"/status – текущее состояние опроса.\n" +
		"/help – это сообщение."

	Default = "Бот не поддерживает такую команду. Информация – /help."

	// FailureReport подставляется в fmt.Sprintf с текстом ошибки цикла опроса.
	FailureReport = "Сбой в работе программы: %v"
)
