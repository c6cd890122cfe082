// Package notify delivers account notifications to users.
package notify

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"panchayat.backend/internal/config"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/pkg/logger"
)

const accountVerifiedSubject = "Account Verified"

var accountVerifiedBody = template.Must(template.New("account_verified").Parse(`<h3>Hi {{.Name}},</h3>
<p>Your account has been successfully verified. You can now log in and access all features.</p>
<p>Thank you for joining us!</p>
<p>Best regards,<br>Admin Team</p>
`))

// Notifier sends user-facing notifications.
type Notifier interface {
	SendAccountVerified(ctx context.Context, user *entities.User) error
}

// New returns an SMTP notifier when mail is configured and a log-only one otherwise.
func New(cfg config.MailConfig) (Notifier, error) {
	if !cfg.Enabled() {
		return NewLogNotifier(), nil
	}
	return NewSMTPNotifier(cfg)
}

type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPNotifier delivers mail through an SMTP relay.
type SMTPNotifier struct {
	sender   mailSender
	from     string
	fromName string
}

// NewSMTPNotifier builds a notifier for the configured relay. STARTTLS is used
// when the server offers it.
func NewSMTPNotifier(cfg config.MailConfig) (*SMTPNotifier, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(15 * time.Second),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &SMTPNotifier{sender: client, from: from, fromName: cfg.FromName}, nil
}

// SendAccountVerified mails the user that an admin approved the account.
// Users without an email address are skipped.
func (n *SMTPNotifier) SendAccountVerified(ctx context.Context, user *entities.User) error {
	if user == nil || !user.Email.Valid || user.Email.String == "" {
		logger.Debug(ctx, "Skipping verification mail, no address")
		return nil
	}
	msg, err := n.accountVerifiedMessage(user)
	if err != nil {
		return err
	}
	if err := n.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send verification mail to %s: %w", user.Username, err)
	}
	logger.Info(ctx, "Verification mail sent", zap.String("username", user.Username))
	return nil
}

func (n *SMTPNotifier) accountVerifiedMessage(user *entities.User) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.FromFormat(n.fromName, n.from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(user.Email.String); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(accountVerifiedSubject)
	if err := msg.SetBodyHTMLTemplate(accountVerifiedBody, user); err != nil {
		return nil, fmt.Errorf("failed to render verification mail: %w", err)
	}
	return msg, nil
}

// LogNotifier records notifications in the log instead of delivering them.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) SendAccountVerified(ctx context.Context, user *entities.User) error {
	if user == nil {
		return nil
	}
	logger.Info(ctx, "Account verified notification",
		zap.String("username", user.Username),
		zap.Bool("has_email", user.Email.Valid),
	)
	return nil
}
