package model

// Sender holds the credentials of the notifying account.
// AppPassword is an application-specific SMTP password, not the account password.
type Sender struct {
	Email       string `json:"email"`
	AppPassword string `json:"app_password"`
}

// Telegram holds the bot token and the chats that receive alerts.
type Telegram struct {
	BotToken string   `json:"bot_token"`
	ChatIDs  []string `json:"chat_ids"`
}

// NotifyConfig is the persisted notification recipient configuration.
// It is loaded once per process and written back wholesale on save.
type NotifyConfig struct {
	Sender   Sender   `json:"sender"`
	Emails   []string `json:"emails"`
	Telegram Telegram `json:"telegram"`
}

// EmailReady reports whether the email channel is fully configured.
func (c *NotifyConfig) EmailReady() bool {
	return c.Sender.Email != "" && c.Sender.AppPassword != "" && len(c.Emails) > 0
}

// TelegramReady reports whether the Telegram channel is fully configured.
func (c *NotifyConfig) TelegramReady() bool {
	return c.Telegram.BotToken != "" && len(c.Telegram.ChatIDs) > 0
}
