package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Message struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Recipients []string  `json:"recipients"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewMessage(subject, body string, recipients ...string) Message {
	return Message{
		ID:         uuid.NewString(),
		Subject:    subject,
		Body:       body,
		Recipients: recipients,
		CreatedAt:  time.Now().UTC(),
	}
}

// Gateway delivers notifications on a best-effort basis.
type Gateway interface {
	Send(ctx context.Context, msg Message) error
}

const dateLayout = "2006-01-02"

func BorrowConfirmation(email, title string, due time.Time) Message {
	return NewMessage(
		fmt.Sprintf("Borrow Confirmation: %s", title),
		fmt.Sprintf("You have successfully borrowed '%s'. It is due on %s.", title, due.Format(dateLayout)),
		email,
	)
}

func ReturnConfirmation(email, title string) Message {
	return NewMessage(
		fmt.Sprintf("Return Confirmation: %s", title),
		fmt.Sprintf("You have successfully returned '%s'. Thanks for using the library!", title),
		email,
	)
}

func CheckoutConfirmation(email string, titles []string, due time.Time) Message {
	return NewMessage(
		fmt.Sprintf("Borrow Confirmation: %d book(s)", len(titles)),
		fmt.Sprintf("You have successfully borrowed: '%s'. They are due on %s.",
			strings.Join(titles, "', '"), due.Format(dateLayout)),
		email,
	)
}

func OverdueReminder(email, username, title string, due time.Time) Message {
	return NewMessage(
		fmt.Sprintf("Overdue Book Reminder: %s", title),
		fmt.Sprintf("Hi %s,\n\nThe book '%s' you borrowed was due on %s.\n"+
			"Please return it as soon as possible to avoid fines.\n\nThank you!",
			username, title, due.Format(dateLayout)),
		email,
	)
}

type logNotifier struct {
	log *zap.Logger
}

// NewLogNotifier writes messages to the log instead of delivering them.
func NewLogNotifier(log *zap.Logger) *logNotifier {
	return &logNotifier{log: log.Named("notify")}
}

func (n *logNotifier) Send(_ context.Context, msg Message) error {
	n.log.Info("notification",
		zap.String("id", msg.ID),
		zap.String("subject", msg.Subject),
		zap.Strings("recipients", msg.Recipients),
		zap.String("body", msg.Body),
	)
	return nil
}
