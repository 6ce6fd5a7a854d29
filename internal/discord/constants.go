package discord

// Embed colors
const (
	ColorStarted = 0x3498DB // Blue
	ColorRound   = 0xF1C40F // Gold
	ColorFinal   = 0x9B59B6 // Purple
)

// Embed limits enforced by Discord
const (
	embedDescriptionLimit = 4096
	truncationSuffix      = "…"
)

// Message templates
const (
	TitleSessionStarted = "🎉 The draw has started!"
	TitleRoundCompleted = "🏆 %s"
	TitleFinalPrize     = "🏆 %s (final prize)"
	DescSessionStarted  = "**%d** participants are in the pool. Good luck everyone!"
	FieldWinners        = "Winners"
	FieldRemaining      = "Still in the pool"
	FooterTemplate      = "Lucky Draw %s"
	WebhookUsername     = "Lucky Draw"
)

// Log messages
const (
	LogMsgAnnouncementSent   = "Discord announcement sent"
	LogMsgAnnouncementFailed = "Discord announcement failed"
	LogMsgPayloadUnreadable  = "Discord announcer could not read event payload"
	LogMsgForwardingEvents   = "Forwarding draw events to Discord"
)

// Error context messages
const (
	ErrContextWebhookExecute = "failed to execute webhook"
)
