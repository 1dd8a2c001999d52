package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/parthsali/prompt-generator/internal/analyze"
	"github.com/parthsali/prompt-generator/internal/session"
)

// replies have to fit Telegram's 4096-char message limit
const maxReplyLen = 3900

var httpc = &http.Client{Timeout: 60 * time.Second}

func (r *Router) acceptPhoto(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	r.send(cid, "Got the photo, analyzing…")

	ph := msg.Photo[len(msg.Photo)-1]
	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: ph.FileID})
	if err != nil {
		r.send(cid, "Could not fetch the photo: "+err.Error())
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, file.FilePath)
	img, err := download(url)
	if err != nil {
		r.send(cid, "Could not download the photo: "+err.Error())
		return
	}

	req := analyze.NewRequester(r.EngManager.Get(cid))
	res := r.Session.Process(context.Background(), req, session.Upload{
		Name: ph.FileID + ".jpg",
		Data: img,
	})

	if res.Label != "" {
		r.send(cid, res.Label)
	}
	for _, w := range res.Warnings {
		r.send(cid, "⚠️ "+w)
	}
	r.send(cid, truncate(res.Prompt))
}

func download(url string) ([]byte, error) {
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}

func truncate(s string) string {
	if len(s) > maxReplyLen {
		return s[:maxReplyLen] + "…"
	}
	return s
}
