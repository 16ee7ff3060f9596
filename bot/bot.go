/* bot.go
 * Contains logic used for creating the bot and the helpers shared by the command handlers. Requires a discord bot
 * token, and APIPtr both of which are passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"strings"

	"fpl-insights/api/api"

	"github.com/go-andiamo/splitter"
)

// Discord rejects messages longer than this
const maxMessageLength = 2000

type Bot struct {
	BotToken string
	APIPtr   *api.API
}

func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
	}, nil
}

// Helper function to check if a message is the given command, e.g. "$top 5" is "$top" but "$topx" is not
// Preconditions: Receives the message content and the command including its prefix
// Postconditions: Returns true if the content is the command on its own or followed by whitespace
func isCommand(content string, command string) bool {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, command) {
		return false
	}
	rest := content[len(command):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n'
}

// splitArgs splits a message into its arguments, dropping the command. Arguments that contain spaces can be wrapped in
// quotes, e.g. $player "Bruno Fernandes"
func splitArgs(content string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(strings.TrimSpace(content))
	if err != nil {
		return nil, err
	}

	args := make([]string, 0, len(parts))
	for i, part := range parts {
		if i == 0 {
			continue
		}
		part = strings.TrimSpace(strings.Trim(part, "\"“”"))
		if part != "" {
			args = append(args, part)
		}
	}
	return args, nil
}

// chunkMessage splits text on line breaks so each chunk fits in a single discord message. A single line longer than the
// limit is cut
func chunkMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			if current.Len() > 0 {
				chunks = append(chunks, current.String())
				current.Reset()
			}
			chunks = append(chunks, line[:limit])
			line = line[limit:]
		}
		if current.Len()+len(line) > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
