package upstream

import (
	"context"

	"homecare_portal/internal/model"
)

type MessagingAPI struct {
	c *Client
}

func NewMessagingAPI(c *Client) *MessagingAPI {
	return &MessagingAPI{c: c}
}

func (a *MessagingAPI) ListConversations(ctx context.Context, bearer string, page, limit int) ([]model.Conversation, int64, error) {
	q := pageQuery(nil, page, limit)

	var list []model.Conversation
	total, err := a.c.getList(ctx, bearer, "/conversations", q, &list, "messaging.conversations")
	return list, total, err
}

func (a *MessagingAPI) Thread(ctx context.Context, bearer, conversationID string, page, limit int) ([]model.Message, int64, error) {
	q := pageQuery(nil, page, limit)

	var list []model.Message
	total, err := a.c.getList(ctx, bearer, "/conversations/"+conversationID+"/messages", q, &list, "messaging.thread")
	return list, total, err
}

func (a *MessagingAPI) Send(ctx context.Context, bearer, conversationID, body string) (*model.Message, error) {
	var msg model.Message
	payload := map[string]string{"body": body}
	if err := a.c.post(ctx, bearer, "/conversations/"+conversationID+"/messages", payload, &msg, "messaging.send"); err != nil {
		return nil, err
	}
	return &msg, nil
}

// StartConversation 新建会话并发送首条消息
func (a *MessagingAPI) StartConversation(ctx context.Context, bearer string, participants []string, subject, body string) (*model.Conversation, error) {
	var conv model.Conversation
	payload := map[string]interface{}{
		"participants": participants,
		"subject":      subject,
		"body":         body,
	}
	if err := a.c.post(ctx, bearer, "/conversations", payload, &conv, "messaging.start"); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (a *MessagingAPI) UnreadCount(ctx context.Context, bearer string) (int, error) {
	var out struct {
		Unread int `json:"unread"`
	}
	if err := a.c.get(ctx, bearer, "/conversations/unread", nil, &out, "messaging.unread"); err != nil {
		return 0, err
	}
	return out.Unread, nil
}

func (a *MessagingAPI) MarkRead(ctx context.Context, bearer, conversationID string) error {
	return a.c.put(ctx, bearer, "/conversations/"+conversationID+"/read", nil, nil, "messaging.read")
}
