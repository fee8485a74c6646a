package contactbot

import "fmt"

// Outcome is the result of handling one fulfillment request.
type Outcome int

// Handling outcomes.
const (
	Sent Outcome = iota
	SendFailed
	ConfigurationMissing
	MalformedPayload
	UnexpectedError
	MethodNotAllowed
)

var outcomeNames = map[Outcome]string{
	Sent:                 "sent",
	SendFailed:           "send_failed",
	ConfigurationMissing: "configuration_missing",
	MalformedPayload:     "malformed_payload",
	UnexpectedError:      "unexpected_error",
	MethodNotAllowed:     "method_not_allowed",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Fulfillment texts shown to the end user.
const (
	sentText          = "Thanks, %s! Your details have been sent."
	sendFailedText    = "Sorry, I couldn't send your details right now due to a server issue. Please try again."
	configMissingText = "Email configuration error. Please contact support."
	malformedText     = "Error processing your request: Invalid data format."
	unexpectedText    = "An unexpected error occurred. Please try again later."
)

// FulfillmentText maps an outcome to the reply for the end user.
// MethodNotAllowed has no fulfillment text and yields an empty string.
func FulfillmentText(o Outcome, c Contact) string {
	switch o {
	case Sent:
		return fmt.Sprintf(sentText, c.FirstName())
	case SendFailed:
		return sendFailedText
	case ConfigurationMissing:
		return configMissingText
	case MalformedPayload:
		return malformedText
	case MethodNotAllowed:
		return ""
	default:
		return unexpectedText
	}
}
