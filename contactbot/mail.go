package contactbot

// Mail represents an email.
type Mail struct {
	SenderName string // sender name, for instance Chatbot
	From       string // sender address, verified with the provider
	To         string // receiving address
	Subject    string // mail subject
	Body       string // mail body, HTML
}

// Identity holds the static sender and recipient of notification mail.
type Identity struct {
	SenderName       string
	SenderAddress    string
	RecipientAddress string
}
