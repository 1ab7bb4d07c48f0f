package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

// Бот-компаньон: открывает мини-апп по кнопке и прокидывает реферальный
// deep-link (start=ref_<код>) в адрес веб-аппа.

func main() {
	godotenv.Load("../.env")
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	webAppURL := os.Getenv("WEBAPP_URL")
	if webAppURL == "" {
		webAppURL = "https://app.pvndora.shop"
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatalf("❌ Не удалось запустить бота: %v", err)
	}
	log.Printf("🤖 Бот запущен: @%s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}
		switch {
		case strings.HasPrefix(update.Message.Text, "/start"):
			handleStart(bot, update.Message, webAppURL)
		case update.Message.Text == "/help":
			msg := tgbotapi.NewMessage(update.Message.Chat.ID,
				"Магазин открывается по кнопке ниже. Вопросы – через раздел поддержки в приложении.")
			bot.Send(msg)
		}
	}
}

func handleStart(bot *tgbotapi.BotAPI, message *tgbotapi.Message, webAppURL string) {
	url := webAppURL

	// /start ref_XXXX – реферальный deep-link из чужой ссылки
	parts := strings.Fields(message.Text)
	if len(parts) > 1 && strings.HasPrefix(parts[1], "ref_") {
		url = fmt.Sprintf("%s?ref=%s", webAppURL, strings.TrimPrefix(parts[1], "ref_"))
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.InlineKeyboardButton{
				Text:   "🛍 Открыть магазин",
				WebApp: &tgbotapi.WebAppInfo{URL: url},
			},
		),
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, "Добро пожаловать в PVNDORA! Жми кнопку, чтобы открыть магазин.")
	msg.ReplyMarkup = keyboard
	if _, err := bot.Send(msg); err != nil {
		log.Printf("⚠️ Не удалось отправить приветствие: %v", err)
	}
}
