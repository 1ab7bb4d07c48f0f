package apiclient

import "sync"

// CallState – флаги загрузки/ошибки одного call-site, чтобы вью могла
// показать спиннер или баннер. Состояние локальное, не глобальное.
type CallState struct {
	mu      sync.Mutex
	loading bool
	err     string
}

// Run выполняет вызов, поднимая loading на время работы. Ошибка сбрасывается
// при старте и запоминается по завершении.
func (s *CallState) Run(fn func() error) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	err := fn()

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
	}
	s.mu.Unlock()
	return err
}

func (s *CallState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *CallState) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Optimistic – оптимистичная мутация: применить локально, дёрнуть бэкенд,
// при ошибке откатить к снимку. Используется тумблерами партнёрских уровней
// в админке; остальные экраны обновляются постфактум.
func Optimistic[T any](target *T, update func(*T), call func() error) error {
	snapshot := *target
	update(target)
	if err := call(); err != nil {
		*target = snapshot
		return err
	}
	return nil
}
