package email

// Config holds the mail settings. The Postmark tokens may be empty in
// development, where DevSender writes messages to DevDir instead.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"EMAIL_SENDER" envDefault:"noreply@larescohousing.it" validate:"omitempty,email"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// Enabled reports whether Postmark can be used.
func (c Config) Enabled() bool {
	return c.PostmarkServerToken != ""
}
