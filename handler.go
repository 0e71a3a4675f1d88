package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Handler struct {
	Bot    *Bot
	DB     *sql.DB
	Sched  *Scheduler
	Text   TextGenerator
	Images ImageProvider
}

// splitCommand matches raw text against the fixed command set. Tokens are
// case sensitive and must lead the message; anything unrecognized, slash or
// not, is conversational input.
func splitCommand(text string) (cmd, args string, ok bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	token, rest, _ := strings.Cut(text, " ")
	switch token {
	case "/start", "/add", "/tasks", "/done", "/remind", "/sticker":
		return strings.TrimPrefix(token, "/"), strings.TrimSpace(rest), true
	}
	return "", "", false
}

// handleMessage dispatches one inbound message to exactly one handler.
// Tasks and reminders are scoped by chat id, like the original bot: in a
// private chat it equals the sender's user id.
func (h *Handler) handleMessage(msg *tgbotapi.Message) {
	if msg.Text == "" {
		return
	}
	chatID := msg.Chat.ID

	cmd, args, ok := splitCommand(msg.Text)
	if !ok {
		h.Bot.reply(chatID, chatReply(context.Background(), h.Text, msg.Text))
		return
	}

	switch cmd {
	case "start":
		h.handleStart(chatID)
	case "add":
		h.handleAdd(chatID, args)
	case "tasks":
		h.handleTasks(chatID)
	case "done":
		h.handleDone(chatID, args)
	case "remind":
		h.handleRemind(chatID, args)
	case "sticker":
		h.handleSticker(chatID, args)
	}
}

func (h *Handler) handleStart(chatID int64) {
	h.Bot.reply(chatID, dedent(`
	נו, מה עכשיו? ככה זה עובד:

	/add [משימה] - מוסיף משימה לרשימה
	/tasks - מראה מה עוד לא עשית
	/done [מספר] - מוחק משימה
	/remind [HH:MM] [טקסט] - תזכורת להיום
	/sticker [מה לצייר] - מדבקה

	כל דבר אחר שתכתוב, אני אענה עליו. לצערי.
	`))
}

func (h *Handler) handleAdd(chatID int64, args string) {
	task := strings.TrimSpace(args)
	if task == "" {
		return
	}

	id, err := addTask(h.DB, chatID, task)
	if err != nil {
		log.Printf("handleAdd: %v", err)
		h.Bot.reply(chatID, "הרשימה שלך התקלקלה לי. נסה שוב.")
		return
	}
	log.Printf("handleAdd: chat=%d task=%d", chatID, id)
	h.Bot.reply(chatID, fmt.Sprintf("רשמתי: '%s'. עכשיו תעוף לעבוד.", task))
}

func (h *Handler) handleTasks(chatID int64) {
	tasks, err := listTasks(h.DB, chatID)
	if err != nil {
		log.Printf("handleTasks: %v", err)
		h.Bot.reply(chatID, "הרשימה שלך התקלקלה לי. נסה שוב.")
		return
	}

	if len(tasks) == 0 {
		h.Bot.reply(chatID, "אין משימות.")
		return
	}

	var b strings.Builder
	b.WriteString("משימות שאתה בטח תתעלם מהן:")
	for _, t := range tasks {
		fmt.Fprintf(&b, "\n%d. %s", t.ID, t.Desc)
	}
	h.Bot.reply(chatID, b.String())
}

func (h *Handler) handleDone(chatID int64, args string) {
	if args == "" {
		return
	}

	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		h.Bot.reply(chatID, userMessage(errInvalidArgument))
		return
	}

	removed, err := removeTask(h.DB, chatID, id)
	if err != nil {
		log.Printf("handleDone: %v", err)
		h.Bot.reply(chatID, "הרשימה שלך התקלקלה לי. נסה שוב.")
		return
	}
	if !removed {
		// The original reports success even when nothing matched; keep the
		// wording, note the miss.
		log.Printf("handleDone: chat=%d id=%d nothing deleted", chatID, id)
	}
	h.Bot.reply(chatID, fmt.Sprintf("מחקתי את %d.", id))
}

func (h *Handler) handleRemind(chatID int64, args string) {
	timeOfDay, text, _ := strings.Cut(args, " ")
	text = strings.TrimSpace(text)
	if timeOfDay == "" || text == "" {
		h.Bot.reply(chatID, "ככה: /remind 16:30 להתקשר לאמא")
		return
	}

	if _, err := h.Sched.Schedule(chatID, timeOfDay, text, time.Now()); err != nil {
		h.Bot.reply(chatID, userMessage(err))
		return
	}
	h.Bot.reply(chatID, fmt.Sprintf("סגור. אזכיר לך ב-%s. אל תגיד שלא הזכרתי.", timeOfDay))
}

func (h *Handler) handleSticker(chatID int64, args string) {
	if strings.TrimSpace(args) == "" {
		h.Bot.reply(chatID, userMessage(errEmptyPrompt))
		return
	}

	progress := h.Bot.reply(chatID, "מג'נרט מדבקה באיכות 'נאנו בננה'... חכה רגע.")

	data, err := renderSticker(context.Background(), h.Images, args)
	if err != nil {
		log.Printf("handleSticker: %v", err)
		h.Bot.reply(chatID, userMessage(err))
		return
	}

	if err := h.Bot.sendSticker(chatID, data); err != nil {
		log.Printf("handleSticker: send sticker: %v", err)
		h.Bot.reply(chatID, userMessage(errProviderFailure))
		return
	}
	h.Bot.deleteMessage(chatID, progress.MessageID)
}
