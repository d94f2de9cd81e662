package domain

// MonitorConfig identifies the node and the chat it reports to.
type MonitorConfig struct {
	BotToken string `yaml:"bot_token" json:"bot_token"`
	ChatID   string `yaml:"chat_id"   json:"chat_id"`
	NodeID   string `yaml:"node_id"   json:"node_id"`
}
