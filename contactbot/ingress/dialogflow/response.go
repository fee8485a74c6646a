package dialogflow

// Text is a fulfillment text message.
type Text struct {
	Text []string `json:"text"`
}

// Message is one entry of a fulfillment response.
type Message struct {
	Text Text `json:"text"`
}

// Response is the webhook reply the agent expects.
type Response struct {
	FulfillmentMessages []Message `json:"fulfillmentMessages"`
}

// NewResponse wraps a single fulfillment text.
func NewResponse(text string) Response {
	return Response{
		FulfillmentMessages: []Message{
			{Text: Text{Text: []string{text}}},
		},
	}
}
