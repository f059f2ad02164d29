package model

// Conversation 站内信会话
type Conversation struct {
	ID           string   `json:"id"`
	Participants []string `json:"participants"`
	Subject      string   `json:"subject"`
	LastMessage  string   `json:"lastMessage"`
	UpdatedAt    string   `json:"updatedAt"`
	UnreadCount  int      `json:"unreadCount"`
}

// Message 站内信
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId"`
	SenderID       string `json:"senderId"`
	Body           string `json:"body"`
	SentAt         string `json:"sentAt"`
	Read           bool   `json:"read"`
}
