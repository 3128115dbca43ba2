package collection

import "github.com/rs/zerolog"

// Notifier receives the user-visible acknowledgment raised by every
// successful mutation. It is the toast analog of the dashboard.
type Notifier interface {
	Notify(title, description string)
}

// LogNotifier writes acknowledgments to the structured log.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(title, description string) {
	n.logger.Info().Str("title", title).Msg(description)
}
