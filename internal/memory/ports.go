package memory

// Store keeps the rolling conversation history per Telegram user.
type Store interface {
	// Append записывает новое сообщение пользователя.
	// Если сессия протухла по idle-порогу — сперва сбрасывает её.
	Append(telegramID int64, text string)

	// Context возвращает склеенную историю для передачи в GPT.
	Context(telegramID int64) string

	// Clear удаляет сессию целиком. Без ошибки, если её нет.
	Clear(telegramID int64)

	// Sweep удаляет все протухшие сессии, возвращает число удалённых.
	Sweep() int

	// Size возвращает число живых сессий.
	Size() int
}
