// Package telegram is the bot front end: one photo in, one analysis prompt out.
package telegram

import (
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/parthsali/prompt-generator/internal/analyze"
	"github.com/parthsali/prompt-generator/internal/session"
)

type Router struct {
	Bot        *tgbotapi.BotAPI
	Engines    *analyze.Engines
	EngManager *analyze.Manager
	Session    *session.Session
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	if upd.Message.IsCommand() {
		r.handleCommand(*upd.Message)
		return
	}
	if len(upd.Message.Photo) > 0 {
		r.acceptPhoto(*upd.Message)
		return
	}
	if upd.Message.Text != "" {
		r.send(upd.Message.Chat.ID, "Send me a photo of a technical question. Commands: /engine, /health")
	}
}

func (r *Router) handleCommand(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	switch msg.Command() {
	case "start":
		r.send(cid, "Send a photo of a technical question and I'll reply with a solver prompt you can paste into any LLM.\nCommands: /engine, /health")
	case "health":
		r.send(cid, "ok, engine: "+r.EngManager.Get(cid).Name())
	case "engine":
		r.handleEngineCommand(cid, msg.Text)
	default:
		r.send(cid, "Unknown command")
	}
}

func (r *Router) handleEngineCommand(cid int64, text string) {
	args := strings.Fields(strings.TrimSpace(strings.TrimPrefix(text, "/engine")))
	if len(args) == 0 {
		cur := r.EngManager.Get(cid)
		r.send(cid, "Current engine: "+cur.Name()+" ("+cur.GetModel()+")\nUsage:\n/engine gemini\n/engine gpt")
		return
	}
	eng, err := r.Engines.GetEngine(strings.ToLower(args[0]))
	if err != nil {
		r.send(cid, "Unknown engine. Available: gemini | gpt")
		return
	}
	r.EngManager.Set(cid, eng)
	r.send(cid, "Switched to "+eng.Name()+" ("+eng.GetModel()+")")
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		slog.Warn("telegram send failed", "chat_id", chatID, "err", err)
	}
}
