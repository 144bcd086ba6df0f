package email

import (
	"bytes"
	"fmt"

	"github.com/wneessen/go-mail"
)

// composeMIME builds a multipart/alternative message with a plain-text part
// and an HTML part. The HTML part alone is used when TextBody is empty.
func composeMIME(fromName, fromAddr string, msg Message) ([]byte, error) {
	m := mail.NewMsg()
	if fromName != "" {
		if err := m.FromFormat(fromName, fromAddr); err != nil {
			return nil, fmt.Errorf("set from: %w", err)
		}
	} else if err := m.From(fromAddr); err != nil {
		return nil, fmt.Errorf("set from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("set to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetDate()
	m.SetMessageID()

	if msg.TextBody != "" {
		m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	} else {
		m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	}

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write message: %w", err)
	}
	return buf.Bytes(), nil
}
