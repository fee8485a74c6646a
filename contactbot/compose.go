package contactbot

import (
	"fmt"
	"html"
)

const bodyTemplate = `<html><body>
    <h2>New User Details from Website Chatbot:</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Phone:</strong> %s</p>
    <p><strong>Message:</strong></p><p>%s</p>
</body></html>
`

// Subject returns the notification subject line for a contact.
func Subject(c Contact) string {
	return fmt.Sprintf("New Contact from %s via Chatbot", c.Name)
}

// Compose renders a contact into a notification mail from id.
// Contact values are HTML-escaped in the body; the subject is plain text.
func Compose(id Identity, c Contact) Mail {
	return Mail{
		SenderName: id.SenderName,
		From:       id.SenderAddress,
		To:         id.RecipientAddress,
		Subject:    Subject(c),
		Body: fmt.Sprintf(bodyTemplate,
			html.EscapeString(c.Name),
			html.EscapeString(c.Email),
			html.EscapeString(c.Phone),
			html.EscapeString(c.Message),
		),
	}
}
