package main

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/parthsali/prompt-generator/internal/analyze"
	"github.com/parthsali/prompt-generator/internal/analyze/gemini"
	"github.com/parthsali/prompt-generator/internal/analyze/openai"
	"github.com/parthsali/prompt-generator/internal/config"
	"github.com/parthsali/prompt-generator/internal/session"
	"github.com/parthsali/prompt-generator/internal/telegram"
)

func main() {
	cfg := config.Load()
	if cfg.TelegramBotToken == "" {
		log.Fatal("missing required env TELEGRAM_BOT_TOKEN")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false

	engines := &analyze.Engines{
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		OpenAI: openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
	}
	def, err := engines.GetEngine(cfg.DefaultEngine)
	if err != nil {
		log.Fatalf("bad DEFAULT_ENGINE: %v", err)
	}

	sess, err := session.New()
	if err != nil {
		log.Fatalf("scratch storage: %v", err)
	}
	defer func() {
		for _, w := range sess.Close() {
			log.Printf("cleanup: %s", w)
		}
	}()

	r := &telegram.Router{
		Bot:        bot,
		Engines:    engines,
		EngManager: analyze.NewManager(def),
		Session:    sess,
	}

	if url := strings.TrimSpace(cfg.WebhookURL); url != "" {
		runWebhook(cfg, bot, r, url)
		return
	}
	runPolling(bot, r)
}

func runPolling(bot *tgbotapi.BotAPI, r *telegram.Router) {
	// drop a possibly stale webhook so long polling can start
	_, _ = bot.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true})

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	log.Printf("bot @%s polling for updates", bot.Self.UserName)
	for upd := range bot.GetUpdatesChan(u) {
		r.HandleUpdate(upd)
	}
}

func runWebhook(cfg *config.Config, bot *tgbotapi.BotAPI, r *telegram.Router, publicURL string) {
	path := "/webhook/" + shortHash(cfg.TelegramBotToken)
	public := strings.TrimRight(publicURL, "/") + path

	wh, err := tgbotapi.NewWebhook(public)
	if err != nil {
		log.Fatal(err)
	}
	wh.DropPendingUpdates = true
	if _, err := bot.Request(wh); err != nil {
		log.Fatal(err)
	}

	updates := bot.ListenForWebhook(path)

	http.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	go func() {
		for upd := range updates {
			r.HandleUpdate(upd)
		}
	}()

	addr := "0.0.0.0:" + cfg.Port
	log.Printf("bot @%s listening on %s; webhook=%s", bot.Self.UserName, addr, public)
	log.Fatal(http.ListenAndServe(addr, nil))
}

func shortHash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])[:16]
}
