/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"fpl-insights/api/external"
	"fpl-insights/api/shared"
	"fpl-insights/logger"
	"fpl-insights/metrics"

	"github.com/bwmarrin/discordgo"
)

const (
	commandTimeout  = 30 * time.Second
	defaultTopCount = 10
	maxTopCount     = 25
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("FPL Insights Bot v1.0\n")
	res.WriteString("`$top [n]`: shows the top n players to buy this gameweek (default 10, max 25). No more than 3 players from one team are listed after the top 5\n")
	res.WriteString("`$budget`: shows the best 3 players costing £7.0m or less\n")
	res.WriteString("`$premium`: shows the best 3 players costing more than £7.0m\n")
	res.WriteString("`$player name`: shows the stats and next fixture for a player. There is fuzzy matching on names, names with spaces can be wrapped in \" (e.g. \"Bruno Fernandes\")\n")
	res.WriteString("`$fixtures`: shows this gameweek's fixtures, with live scores for matches in progress\n")
	res.WriteString("Scores are out of 100 and blend form, fixture difficulty, rotation risk, underlying stats and availability\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// topPlayersHandler handles the $top command with a DiscordSession interface
func (b *Bot) topPlayersHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	count := defaultTopCount
	args, err := splitArgs(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not read command: %s", err))
		return
	}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > maxTopCount {
			session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Number of players must be between 1 and %d", maxTopCount))
			return
		}
		count = n
	}

	top, err := b.APIPtr.GetTopPlayers(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get top players", "error", err)
		session.ChannelMessageSend(message.ChannelID, errorMessage("getting the top players", err))
		return
	}

	players := top.AllPlayers
	if len(players) > count {
		players = players[:count]
	}
	b.sendPredictions(session, message.ChannelID, fmt.Sprintf("Top %d players:", len(players)), players)
}

// budgetHandler handles the $budget command with a DiscordSession interface
func (b *Bot) budgetHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	top, err := b.APIPtr.GetTopPlayers(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get budget suggestions", "error", err)
		session.ChannelMessageSend(message.ChannelID, errorMessage("getting budget suggestions", err))
		return
	}
	b.sendPredictions(session, message.ChannelID, "Budget picks (£7.0m or less):", top.BudgetSuggestions)
}

// premiumHandler handles the $premium command with a DiscordSession interface
func (b *Bot) premiumHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	top, err := b.APIPtr.GetTopPlayers(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get premium suggestions", "error", err)
		session.ChannelMessageSend(message.ChannelID, errorMessage("getting premium suggestions", err))
		return
	}
	b.sendPredictions(session, message.ChannelID, "Premium picks (over £7.0m):", top.PremiumSuggestions)
}

// playerHandler handles the $player command with a DiscordSession interface
func (b *Bot) playerHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	args, err := splitArgs(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Could not read command: %s", err))
		return
	}
	if len(args) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Usage: `$player name`")
		return
	}
	name := strings.Join(args, " ")

	predictions, err := b.APIPtr.SearchPlayers(ctx, name, 1)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to search players", "query", name, "error", err)
		session.ChannelMessageSend(message.ChannelID, errorMessage("looking up that player", err))
		return
	}
	if len(predictions) == 0 {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("No player found matching '%s'", name))
		return
	}

	session.ChannelMessageSend(message.ChannelID, formatPlayerDetails(predictions[0]))
}

// fixturesHandler handles the $fixtures command with a DiscordSession interface
func (b *Bot) fixturesHandler(ctx context.Context, session DiscordSession, message *discordgo.MessageCreate) {
	live, err := b.APIPtr.GetLiveFixtures(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to get live fixtures", "error", err)
		session.ChannelMessageSend(message.ChannelID, errorMessage("getting this gameweek's fixtures", err))
		return
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("Gameweek %d fixtures:\n", live.Matchweek))
	if len(live.Fixtures) == 0 {
		res.WriteString("No fixtures found\n")
	}
	for _, day := range live.Fixtures {
		res.WriteString(fmt.Sprintf("**%s**\n", day.Date))
		for _, match := range day.Matches {
			res.WriteString(formatMatch(match))
		}
	}
	b.send(session, message.ChannelID, res.String())
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author == nil || message.Author.ID == botUserID {
		return
	}

	var command string
	var handle func(context.Context, DiscordSession, *discordgo.MessageCreate)
	switch {
	case isCommand(message.Content, "$help"):
		command = "help"
		handle = func(_ context.Context, s DiscordSession, m *discordgo.MessageCreate) { b.helpMessageHandler(s, m) }

	case isCommand(message.Content, "$top"):
		command, handle = "top", b.topPlayersHandler

	case isCommand(message.Content, "$budget"):
		command, handle = "budget", b.budgetHandler

	case isCommand(message.Content, "$premium"):
		command, handle = "premium", b.premiumHandler

	case isCommand(message.Content, "$player"):
		command, handle = "player", b.playerHandler

	case isCommand(message.Content, "$fixtures"):
		command, handle = "fixtures", b.fixturesHandler

	default:
		return
	}

	metrics.BotCommandsTotal.WithLabelValues(command).Inc()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	logger.FromContext(ctx).Info("Bot command received",
		"command", command,
		"user", message.Author.Username,
		"channel_id", message.ChannelID)

	if command != "help" {
		// Upstream fetches can take a few seconds
		if err := session.ChannelTyping(message.ChannelID); err != nil {
			logger.FromContext(ctx).Debug("Failed to send typing indicator", "error", err)
		}
	}

	handle(ctx, session, message)
}

// sendPredictions writes one line per prediction under the given title
func (b *Bot) sendPredictions(session DiscordSession, channelID string, title string, predictions []shared.PlayerPrediction) {
	if len(predictions) == 0 {
		session.ChannelMessageSend(channelID, "No players match right now")
		return
	}

	var res strings.Builder
	res.WriteString(title + "\n")
	for i, p := range predictions {
		res.WriteString(fmt.Sprintf("%d. %s\n", i+1, formatPredictionLine(p)))
	}
	b.send(session, channelID, res.String())
}

// send posts text, split over several messages when it is too long for one
func (b *Bot) send(session DiscordSession, channelID string, text string) {
	for _, chunk := range chunkMessage(text, maxMessageLength) {
		if _, err := session.ChannelMessageSend(channelID, chunk); err != nil {
			slog.Error("Failed to send discord message", "channel_id", channelID, "error", err)
			return
		}
	}
}

// errorMessage is the reply shown to users when a command fails
func errorMessage(action string, err error) string {
	if errors.Is(err, external.ErrRateLimited) {
		return "The FPL api is rate limiting requests, please try again in a minute"
	}
	return fmt.Sprintf("An error occurred %s", action)
}

func formatPrice(nowCost int) string {
	return fmt.Sprintf("£%.1fm", float64(nowCost)/10)
}

func teamShortName(team *external.Team) string {
	if team == nil {
		return "???"
	}
	return team.ShortName
}

func formatNextFixture(next *shared.NextFixture) string {
	if next == nil {
		return "no fixture"
	}
	venue := "A"
	if next.IsHome {
		venue = "H"
	}
	return fmt.Sprintf("%s (%s) FDR %d", next.Opponent.ShortName, venue, next.Difficulty)
}

// formatPredictionLine gives e.g. "M.Salah (LIV, £13.0m) score 91 | form 8.0 | 7.5 pts | next: NFO (H) FDR 2"
func formatPredictionLine(p shared.PlayerPrediction) string {
	return fmt.Sprintf("%s (%s, %s) score %d | form %.1f | %.1f pts | next: %s",
		p.Player.WebName,
		teamShortName(p.Team),
		formatPrice(p.Player.NowCost),
		p.BuyRecommendation,
		p.Form,
		p.PredictedPoints,
		formatNextFixture(p.NextFixture))
}

func formatPlayerDetails(p shared.PlayerPrediction) string {
	var res strings.Builder
	res.WriteString(fmt.Sprintf("**%s** (%s, %s)\n", p.Player.FullName(), teamShortName(p.Team), formatPrice(p.Player.NowCost)))
	res.WriteString(fmt.Sprintf("Buy score: %d/100\n", p.BuyRecommendation))
	res.WriteString(fmt.Sprintf("Form: %.1f | Predicted points: %.1f | Rotation risk: %.0f%%\n", p.Form, p.PredictedPoints, p.RotationRisk))
	res.WriteString(fmt.Sprintf("Total points: %d | Minutes: %d | xG: %.2f | xA: %.2f\n", p.Player.TotalPoints, p.Player.Minutes, p.XG, p.XA))
	if p.NextFixture != nil {
		res.WriteString(fmt.Sprintf("Next: GW%d vs %s\n", p.NextFixture.Gameweek, formatNextFixture(p.NextFixture)))
	} else {
		res.WriteString("Next: no fixture scheduled\n")
	}
	return res.String()
}

func formatMatch(m shared.Match) string {
	if m.HomeScore == nil || m.AwayScore == nil {
		return fmt.Sprintf("%s vs %s - %s\n", m.HomeTeam, m.AwayTeam, m.Time)
	}
	line := fmt.Sprintf("%s %d - %d %s (%s)", m.HomeTeam, *m.HomeScore, *m.AwayScore, m.AwayTeam, m.Time)
	if m.IsLive {
		line += " LIVE"
	}
	return line + "\n"
}
