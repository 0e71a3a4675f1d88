package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	GeminiKey     string
	HFToken       string
	DBPath        string
}

func loadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		GeminiKey:     os.Getenv("GEMINI_API_KEY"),
		HFToken:       os.Getenv("HF_TOKEN"),
		DBPath:        os.Getenv("TASKS_DB"),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "tasks.db"
	}
	if cfg.TelegramToken == "" || cfg.GeminiKey == "" {
		log.Fatal("TELEGRAM_TOKEN and GEMINI_API_KEY must be set")
	}
	return cfg
}

func main() {
	cfg := loadConfig()

	botApi, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}
	log.Printf("Authorized on account %s", botApi.Self.UserName)

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	textGen, err := NewGeminiClient(ctx, cfg.GeminiKey)
	if err != nil {
		log.Fatalf("failed to create gemini client: %v", err)
	}

	// With an HF token we call the model directly, otherwise fall back to
	// the public templated endpoint.
	var images ImageProvider = PollinationsProvider{}
	if cfg.HFToken != "" {
		images = &HFProvider{Token: cfg.HFToken}
	}

	bot := &Bot{BotApi: botApi}
	bot.setCommands()

	sched := NewScheduler()
	go sched.Run(ctx)

	handler := &Handler{
		Bot:    bot,
		DB:     db,
		Sched:  sched,
		Text:   textGen,
		Images: images,
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := botApi.GetUpdatesChan(updateConfig)

	log.Println("Bot is up, waiting for messages")

	// One consumer drains both inbound updates and reminder firings, so a
	// single goroutine does every transport write.
	for {
		select {
		case <-ctx.Done():
			log.Println("main: shutting down")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			handler.handleMessage(update.Message)
		case firing := <-sched.Fired():
			bot.reply(firing.ChatID, "תזכורת: "+firing.Text)
		}
	}
}
