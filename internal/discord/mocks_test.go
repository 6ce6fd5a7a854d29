package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

type MockWebhookExecutor struct {
	mock.Mock
}

func (m *MockWebhookExecutor) WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(webhookID, token, wait, data)
	if msg := args.Get(0); msg != nil {
		return msg.(*discordgo.Message), args.Error(1)
	}
	return nil, args.Error(1)
}
