/* mock_session.go
 * Contains mock implementation of DiscordSession for testing
 * Authors: Zachary Bower
 */

package bot

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// MockMessage is a message sent to a channel
type MockMessage struct {
	ChannelID string
	Content   string
}

// MockDiscordSession records what the handlers send instead of calling discord
type MockDiscordSession struct {
	mu sync.Mutex

	SentMessages   []MockMessage
	TypingChannels []string

	// Error injection
	SendError   error
	TypingError error
}

func NewMockDiscordSession() *MockDiscordSession {
	return &MockDiscordSession{
		SentMessages: make([]MockMessage, 0),
	}
}

func (m *MockDiscordSession) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SendError != nil {
		return nil, m.SendError
	}
	m.SentMessages = append(m.SentMessages, MockMessage{ChannelID: channelID, Content: content})

	return &discordgo.Message{
		ID:        "mock_message_id",
		ChannelID: channelID,
		Content:   content,
	}, nil
}

func (m *MockDiscordSession) ChannelTyping(channelID string, options ...discordgo.RequestOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.TypingChannels = append(m.TypingChannels, channelID)
	return m.TypingError
}

// LastMessage returns the content of the last message sent, or "" if none
func (m *MockDiscordSession) LastMessage() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.SentMessages) == 0 {
		return ""
	}
	return m.SentMessages[len(m.SentMessages)-1].Content
}

// AllContent joins every message sent, for assertions that don't care how output was chunked
func (m *MockDiscordSession) AllContent() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var content string
	for _, msg := range m.SentMessages {
		content += msg.Content
	}
	return content
}
