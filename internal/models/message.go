package models

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/recordkeeper/internal/common"
)

// Message is a single message record. Text may contain spaces but no line
// breaks; Sender and Receiver are single tokens.
type Message struct {
	Text     string
	Sender   string
	Receiver string
}

func (m Message) Validate() error {
	if m.Text == "" {
		return fmt.Errorf("%w: text is empty", common.ErrInvalidRecord)
	}
	if strings.ContainsAny(m.Text, "\r\n") {
		return fmt.Errorf("%w: text contains a line break", common.ErrInvalidRecord)
	}
	if err := validateToken("sender", m.Sender); err != nil {
		return err
	}
	return validateToken("receiver", m.Receiver)
}

func (m Message) String() string {
	return fmt.Sprintf("%s | from: %s -> %s", m.Text, m.Sender, m.Receiver)
}

func isSpace(r rune) bool { return unicode.IsSpace(r) }
