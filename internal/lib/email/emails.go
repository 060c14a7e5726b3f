package email

// SendWelcomeEmail greets a newly registered visitor.
func (c *Client) SendWelcomeEmail(to, name string) error {
	return c.SendEmail(
		to,
		"Selamat datang di Bluewave!",
		TemplateWelcome,
		map[string]string{"UserName": name},
	)
}
