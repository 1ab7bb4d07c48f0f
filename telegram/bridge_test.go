package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevBridgeIdentity(t *testing.T) {
	b := NewDevBridge()

	assert.Equal(t, int64(123456789), b.User().ID)
	assert.Equal(t, "testuser", b.User().Username)
	assert.Equal(t, "", b.InitData())
	assert.False(t, b.HostAvailable())
}

func TestDevBridgeNoOps(t *testing.T) {
	b := NewDevBridge()

	// Без хоста SDK-вызовы молча игнорируются...
	b.Haptic(HapticSuccess)
	b.SetMainButton(MainButtonState{Text: "Pay", Visible: true})
	b.ShowBackButton(true, "back")
	b.Close()
	assert.Empty(t, b.DrainCommands())

	// ...кроме диалогов, которые падают на нативные браузерные
	b.ShowConfirm("Удалить товар?", "confirm-1")
	b.ShowAlert("Ошибка")
	cmds := b.DrainCommands()
	require.Len(t, cmds, 2)
	assert.Equal(t, "dialog.confirm", cmds[0].Type)
	assert.Equal(t, "dialog.alert", cmds[1].Type)
}

func TestHostBridgeLifecycle(t *testing.T) {
	b := NewBridge(WebAppUser{ID: 42, Username: "real"}, "query_id=abc", "dark")

	cmds := b.DrainCommands()
	require.Len(t, cmds, 2)
	assert.Equal(t, "ready", cmds[0].Type)
	assert.Equal(t, "expand", cmds[1].Type)
	assert.Equal(t, "dark", b.ColorScheme())

	b.OnThemeChanged("light")
	assert.Equal(t, "light", b.ColorScheme())
}

func TestHapticStyleMapping(t *testing.T) {
	b := NewBridge(WebAppUser{ID: 42}, "x", "light")
	b.DrainCommands()

	b.Haptic(HapticSuccess)
	b.Haptic(HapticHeavy)
	b.Haptic(HapticSelection)
	b.Haptic(HapticStyle("bogus"))

	cmds := b.DrainCommands()
	require.Len(t, cmds, 3)
	assert.Equal(t, "notification", cmds[0].Data["kind"])
	assert.Equal(t, "success", cmds[0].Data["style"])
	assert.Equal(t, "impact", cmds[1].Data["kind"])
	assert.Equal(t, "heavy", cmds[1].Data["style"])
	assert.Equal(t, "selection", cmds[2].Data["kind"])
}
