package service

// TODO тут нужно будет завязаться на опции сервиса, а не телебота
type Telegram interface {
	SendMessage(message string, opts ...interface{}) error
	Start()
	Stop()
}
