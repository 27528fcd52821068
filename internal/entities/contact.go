package entities

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
}
