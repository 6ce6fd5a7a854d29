package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LuckyDraw_Go/internal/event"
	"github.com/osse101/LuckyDraw_Go/internal/logger"
)

// WebhookExecutor is the part of *discordgo.Session the announcer needs
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Announcer posts draw milestones to a Discord channel through a webhook.
// Handler errors are returned so a resilient bus can retry them.
type Announcer struct {
	client    WebhookExecutor
	webhookID string
	token     string
	eventID   string
	now       func() time.Time
}

// NewAnnouncer creates an announcer for one webhook
func NewAnnouncer(client WebhookExecutor, webhookID, token, eventID string) *Announcer {
	return &Announcer{
		client:    client,
		webhookID: webhookID,
		token:     token,
		eventID:   eventID,
		now:       time.Now,
	}
}

// NewSession returns a REST-only discordgo session for webhook calls.
// Webhook execution authenticates with the webhook token, so no bot token is needed.
func NewSession() (*discordgo.Session, error) {
	return discordgo.New("")
}

// Register subscribes the announcer to the events it posts
func (a *Announcer) Register(bus event.Bus) {
	bus.Subscribe(event.SessionStarted, a.HandleSessionStarted)
	bus.Subscribe(event.RoundCompleted, a.HandleRoundCompleted)
}

// Forwarder relays the announced event types from the draw bus to the
// announcer's bus so a slow webhook never holds up a draw action.
type Forwarder struct {
	to event.Bus
	wg sync.WaitGroup
}

// Forward subscribes a Forwarder on from that republishes to to
func Forward(from, to event.Bus) *Forwarder {
	f := &Forwarder{to: to}
	from.Subscribe(event.SessionStarted, f.relay)
	from.Subscribe(event.RoundCompleted, f.relay)
	return f
}

func (f *Forwarder) relay(ctx context.Context, evt event.Event) error {
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		_ = f.to.Publish(context.WithoutCancel(ctx), evt)
	}()
	return nil
}

// Wait blocks until in-flight relays finish or ctx is done
func (f *Forwarder) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		f.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HandleSessionStarted posts the opening announcement
func (a *Announcer) HandleSessionStarted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.SessionPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadUnreadable, "event_type", evt.Type, "error", err)
		return nil
	}

	return a.send(ctx, evt.Type, &discordgo.MessageEmbed{
		Title:       TitleSessionStarted,
		Description: fmt.Sprintf(DescSessionStarted, payload.Remaining),
		Color:       ColorStarted,
	})
}

// HandleRoundCompleted posts the winners of a prize
func (a *Announcer) HandleRoundCompleted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.RoundCompletedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadUnreadable, "event_type", evt.Type, "error", err)
		return nil
	}

	return a.send(ctx, evt.Type, RoundEmbed(payload))
}

// RoundEmbed renders one completed round
func RoundEmbed(payload event.RoundCompletedPayloadV1) *discordgo.MessageEmbed {
	title := fmt.Sprintf(TitleRoundCompleted, payload.Prize.Name)
	color := ColorRound
	if payload.IsLast {
		title = fmt.Sprintf(TitleFinalPrize, payload.Prize.Name)
		color = ColorFinal
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: winnerList(payload.Winners),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: FieldWinners, Value: strconv.Itoa(len(payload.Winners)), Inline: true},
			{Name: FieldRemaining, Value: strconv.Itoa(payload.Remaining), Inline: true},
		},
	}
}

func winnerList(winners []string) string {
	var b strings.Builder
	for i, name := range winners {
		line := fmt.Sprintf("%d. %s\n", i+1, name)
		if b.Len()+len(line)+len(truncationSuffix) > embedDescriptionLimit {
			b.WriteString(truncationSuffix)
			break
		}
		b.WriteString(line)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *Announcer) send(ctx context.Context, eventType event.Type, embed *discordgo.MessageEmbed) error {
	log := logger.FromContext(ctx)

	embed.Timestamp = a.now().Format(time.RFC3339)
	embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf(FooterTemplate, a.eventID)}

	params := &discordgo.WebhookParams{
		Username: WebhookUsername,
		Embeds:   []*discordgo.MessageEmbed{embed},
	}

	if _, err := a.client.WebhookExecute(a.webhookID, a.token, false, params, discordgo.WithContext(ctx)); err != nil {
		log.Error(LogMsgAnnouncementFailed, "event_type", eventType, "error", err)
		return fmt.Errorf("%s: %w", ErrContextWebhookExecute, err)
	}

	log.Info(LogMsgAnnouncementSent, "event_type", eventType)
	return nil
}
