package telegram

import (
	"sync"

	"github.com/google/uuid"
)

// Bridge – единая прослойка над Telegram WebApp SDK. Обработчики не трогают
// window.Telegram напрямую: страница мини-аппа опрашивает очередь команд моста
// и исполняет их на стороне хоста. Вне Telegram мост работает в dev-режиме с
// фиксированным тестовым пользователем.

// DevUser – идентичность для запуска вне Telegram.
var DevUser = WebAppUser{
	ID:       123456789,
	Username: "testuser",
}

type HapticStyle string

const (
	HapticLight     HapticStyle = "light"
	HapticMedium    HapticStyle = "medium"
	HapticHeavy     HapticStyle = "heavy"
	HapticSuccess   HapticStyle = "success"
	HapticWarning   HapticStyle = "warning"
	HapticError     HapticStyle = "error"
	HapticSelection HapticStyle = "selection"
)

// Семантические стили success/warning/error не существуют в SDK –
// они транслируются в notificationOccurred, физические – в impactOccurred.
var hapticCommands = map[HapticStyle][2]string{
	HapticLight:     {"impact", "light"},
	HapticMedium:    {"impact", "medium"},
	HapticHeavy:     {"impact", "heavy"},
	HapticSuccess:   {"notification", "success"},
	HapticWarning:   {"notification", "warning"},
	HapticError:     {"notification", "error"},
	HapticSelection: {"selection", ""},
}

// Command – одна команда хосту; страница забирает их через DrainCommands.
type Command struct {
	ID   string                 `json:"id"`
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data,omitempty"`
}

// MainButtonState – конфигурация нативной главной кнопки.
type MainButtonState struct {
	Text      string `json:"text"`
	Color     string `json:"color,omitempty"`
	Visible   bool   `json:"visible"`
	Loading   bool   `json:"loading"`
	HandlerID string `json:"handler_id,omitempty"`
}

type Bridge struct {
	mu          sync.Mutex
	user        WebAppUser
	initData    string
	colorScheme string
	host        bool
	queue       []Command
}

// NewBridge создаёт мост для запуска внутри Telegram: пользователь и initData
// уже проверены подписью. Сразу ставит в очередь ready/expand.
func NewBridge(user WebAppUser, initData, colorScheme string) *Bridge {
	b := &Bridge{user: user, initData: initData, colorScheme: colorScheme, host: true}
	b.push("ready", nil)
	b.push("expand", nil)
	return b
}

// NewDevBridge – запуск вне Telegram: фиксированный пользователь, пустой
// initData, SDK-команды не ставятся.
func NewDevBridge() *Bridge {
	return &Bridge{user: DevUser, initData: "", colorScheme: "light", host: false}
}

func (b *Bridge) User() WebAppUser    { return b.user }
func (b *Bridge) InitData() string    { return b.initData }
func (b *Bridge) HostAvailable() bool { return b.host }

func (b *Bridge) ColorScheme() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.colorScheme
}

// OnThemeChanged вызывается страницей при событии themeChanged.
func (b *Bridge) OnThemeChanged(scheme string) {
	b.mu.Lock()
	b.colorScheme = scheme
	b.mu.Unlock()
}

// ShowConfirm ставит диалог подтверждения; вне Telegram – нативный confirm
// браузера. Ответ приходит асинхронно на handler.
func (b *Bridge) ShowConfirm(message, handlerID string) {
	typ := "popup.confirm"
	if !b.host {
		typ = "dialog.confirm"
	}
	b.push(typ, map[string]interface{}{"message": message, "handler_id": handlerID})
}

func (b *Bridge) ShowAlert(message string) {
	typ := "popup.alert"
	if !b.host {
		typ = "dialog.alert"
	}
	b.push(typ, map[string]interface{}{"message": message})
}

// Haptic – тактильный отклик; вне Telegram молча игнорируется.
func (b *Bridge) Haptic(style HapticStyle) {
	if !b.host {
		return
	}
	cmd, ok := hapticCommands[style]
	if !ok {
		return
	}
	data := map[string]interface{}{"kind": cmd[0]}
	if cmd[1] != "" {
		data["style"] = cmd[1]
	}
	b.push("haptic", data)
}

func (b *Bridge) SetMainButton(state MainButtonState) {
	if !b.host {
		return
	}
	b.push("main_button", map[string]interface{}{
		"text":       state.Text,
		"color":      state.Color,
		"visible":    state.Visible,
		"loading":    state.Loading,
		"handler_id": state.HandlerID,
	})
}

func (b *Bridge) ShowBackButton(visible bool, handlerID string) {
	if !b.host {
		return
	}
	b.push("back_button", map[string]interface{}{"visible": visible, "handler_id": handlerID})
}

func (b *Bridge) OpenLink(url string) {
	if !b.host {
		b.push("navigate", map[string]interface{}{"url": url})
		return
	}
	b.push("open_link", map[string]interface{}{"url": url})
}

func (b *Bridge) Close() {
	if !b.host {
		return
	}
	b.push("close", nil)
}

// DrainCommands отдаёт накопленные команды и очищает очередь.
func (b *Bridge) DrainCommands() []Command {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.queue
	b.queue = nil
	return out
}

func (b *Bridge) push(typ string, data map[string]interface{}) {
	b.mu.Lock()
	b.queue = append(b.queue, Command{ID: uuid.New().String(), Type: typ, Data: data})
	b.mu.Unlock()
}
