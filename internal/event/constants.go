package event

import "time"

// Event Schema Version
const (
	EventSchemaVersion = "1.0"
)

// Retry queue configuration
const (
	// RetryQueueBufferSize bounds events waiting for a retry attempt
	RetryQueueBufferSize = 1000

	// RetryInitialDelaySeconds is the default base delay between attempts
	RetryInitialDelaySeconds = 2

	// RetryMaxAttempts is the default number of retries before dead-lettering
	RetryMaxAttempts = 5
)

// File permissions
const (
	DeadLetterFilePermissions = 0644
)

// Log messages
const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"

	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay doubles baseDelay for every attempt after the first.
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
