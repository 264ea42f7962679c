// Package telegram relays plain notifications to a Telegram chat through the
// Bot API sendMessage method.
//
// The client is deliberately narrow: one POST per message, a bounded timeout
// and no automatic retry. Any non-2xx status or a response with "ok": false
// is reported as ErrSendFailed wrapped around an *APIError.
//
//	client := telegram.NewClient(telegram.Config{
//	    BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
//	    ChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
//	    Timeout:  10 * time.Second,
//	})
//	if err := client.Notify(ctx, "*hello*"); err != nil {
//	    // log err; never show it to end users
//	}
//
// Messages use the legacy Markdown parse mode. Interpolated user input should
// go through EscapeMarkdown.
package telegram
