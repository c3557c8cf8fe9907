package health

// Integration внешняя интеграция, которая может быть не настроена
type Integration interface {
	Configured() bool
}
