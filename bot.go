package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	BotApi *tgbotapi.BotAPI
}

func (bot *Bot) setCommands() {
	commands := []tgbotapi.BotCommand{
		{Command: "add", Description: "הוספת משימה לרשימה"},
		{Command: "tasks", Description: "מה עוד לא עשית"},
		{Command: "done", Description: "מחיקת משימה לפי מספר"},
		{Command: "remind", Description: "תזכורת חד פעמית להיום"},
		{Command: "sticker", Description: "ציור מדבקה"},
		{Command: "start", Description: "עזרה"},
	}
	if _, err := bot.BotApi.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		log.Printf("Failed to set bot commands: %v", err)
	}
}

func (bot *Bot) reply(chatID int64, text string) tgbotapi.Message {
	message := tgbotapi.NewMessage(chatID, text)
	sent, err := bot.BotApi.Send(message)
	if err != nil {
		log.Printf("reply: send failed chat=%d: %v", chatID, err)
	}
	return sent
}

func (bot *Bot) sendSticker(chatID int64, data []byte) error {
	sticker := tgbotapi.NewSticker(chatID, tgbotapi.FileBytes{
		Name:  "sticker.webp",
		Bytes: data,
	})
	_, err := bot.BotApi.Send(sticker)
	return err
}

func (bot *Bot) deleteMessage(chatID int64, messageID int) {
	if _, err := bot.BotApi.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		log.Printf("deleteMessage: chat=%d msg=%d: %v", chatID, messageID, err)
	}
}
