package contactbot

// Exchange describes the servicemail RabbitMQ exchange name.
const Exchange = "servicemail"

// IngressRoutingKey is the routing key the chatbot publishes composed mail under.
const IngressRoutingKey = "ingress.chatbot"

// NotAvailable fills contact fields the user never supplied.
const NotAvailable = "N/A"
