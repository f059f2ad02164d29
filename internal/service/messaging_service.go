package service

import (
	"context"

	"homecare_portal/internal/model"
	"homecare_portal/internal/upstream"
)

type MessagingService struct {
	API *upstream.MessagingAPI
}

func NewMessagingService(api *upstream.MessagingAPI) *MessagingService {
	return &MessagingService{API: api}
}

func (s *MessagingService) ListConversations(ctx context.Context, bearer string, page, limit int) ([]model.Conversation, int64, error) {
	return s.API.ListConversations(ctx, bearer, normPage(page), normLimit(limit))
}

func (s *MessagingService) Thread(ctx context.Context, bearer, conversationID string, page, limit int) ([]model.Message, int64, error) {
	return s.API.Thread(ctx, bearer, conversationID, normPage(page), normLimit(limit))
}

func (s *MessagingService) Send(ctx context.Context, bearer, conversationID, body string) (*model.Message, error) {
	return s.API.Send(ctx, bearer, conversationID, body)
}

func (s *MessagingService) StartConversation(ctx context.Context, bearer string, participants []string, subject, body string) (*model.Conversation, error) {
	return s.API.StartConversation(ctx, bearer, participants, subject, body)
}

func (s *MessagingService) UnreadCount(ctx context.Context, bearer string) (int, error) {
	return s.API.UnreadCount(ctx, bearer)
}

func (s *MessagingService) MarkRead(ctx context.Context, bearer, conversationID string) error {
	return s.API.MarkRead(ctx, bearer, conversationID)
}
