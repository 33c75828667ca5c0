package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/retry"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMessages(t *testing.T) {
	due := time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)

	m := BorrowConfirmation("a@b.c", "Dune", due)
	require.Equal(t, "Borrow Confirmation: Dune", m.Subject)
	require.Contains(t, m.Body, "2024-03-09")
	require.Equal(t, []string{"a@b.c"}, m.Recipients)
	require.NotEmpty(t, m.ID)

	require.Equal(t, "Return Confirmation: Dune", ReturnConfirmation("a@b.c", "Dune").Subject)

	m = CheckoutConfirmation("a@b.c", []string{"Dune", "Emma"}, due)
	require.Contains(t, m.Body, "'Dune', 'Emma'")

	m = OverdueReminder("a@b.c", "peace", "Dune", due)
	require.Equal(t, "Overdue Book Reminder: Dune", m.Subject)
	require.True(t, strings.HasPrefix(m.Body, "Hi peace,"))
}

func TestKafkaNotifier_Send(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	cb := circuit_breaker.New(circuit_breaker.Config{RecordLength: 2, Timeout: time.Hour, Percentile: 1, RecoveryRequests: 1})
	n := NewKafkaNotifier(producer, kafka.NotificationTopic, cb, zap.NewNop())

	msg := ReturnConfirmation("a@b.c", "Dune")
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got Message
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.ID != msg.ID || got.Subject != msg.Subject {
			return errors.New("unexpected message")
		}
		return nil
	})
	require.NoError(t, n.Send(context.Background(), msg))

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	require.Error(t, n.Send(context.Background(), msg))
	require.Error(t, n.Send(context.Background(), msg))

	// breaker is open, the producer is not called again
	require.ErrorIs(t, n.Send(context.Background(), msg), circuit_breaker.ErrOpenCB)
	require.NoError(t, producer.Close())
}

type fakeMailer struct {
	err       error
	failures  int
	attempts  int
	delivered []Message
}

func (f *fakeMailer) Deliver(_ context.Context, msg Message) error {
	f.attempts++
	if f.err != nil && (f.failures == 0 || f.attempts <= f.failures) {
		return f.err
	}
	f.delivered = append(f.delivered, msg)
	return nil
}

func TestConsumer_handle(t *testing.T) {
	msg := ReturnConfirmation("a@b.c", "Dune")
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	smtpDown := errors.New("smtp down")

	tests := []struct {
		name      string
		value     []byte
		mailer    *fakeMailer
		wantErr   error
		attempts  int
		delivered int
	}{
		{name: "ok", value: data, mailer: &fakeMailer{}, attempts: 1, delivered: 1},
		{name: "undecodable", value: []byte("{"), mailer: &fakeMailer{}},
		{name: "first delivery failed", value: data, mailer: &fakeMailer{err: smtpDown, failures: 1}, attempts: 2, delivered: 1},
		{name: "every delivery failed", value: data, mailer: &fakeMailer{err: smtpDown}, wantErr: smtpDown, attempts: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConsumer(tt.mailer, zap.NewNop(), retry.WithMaxAttempts(3), retry.WithBaseDelay(0))
			err := c.handle(context.Background(), &sarama.ConsumerMessage{Value: tt.value, Topic: kafka.NotificationTopic})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.attempts, tt.mailer.attempts)
			require.Len(t, tt.mailer.delivered, tt.delivered)
		})
	}
}

type fakeSession struct {
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32 { return nil }
func (s *fakeSession) MemberID() string { return "member" }
func (s *fakeSession) GenerationID() int32 { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string) {}
func (s *fakeSession) Commit() {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Context() context.Context { return s.ctx }
func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string { return kafka.NotificationTopic }
func (c *fakeClaim) Partition() int32 { return 0 }
func (c *fakeClaim) InitialOffset() int64 { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64 { return int64(len(c.messages)) }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

// routingMailer fails every delivery addressed to failFor.
type routingMailer struct {
	failFor   string
	delivered []string
}

func (m *routingMailer) Deliver(_ context.Context, msg Message) error {
	if len(msg.Recipients) > 0 && msg.Recipients[0] == m.failFor {
		return errors.New("mailbox unavailable")
	}
	m.delivered = append(m.delivered, msg.Recipients[0])
	return nil
}

func TestConsumer_ConsumeClaim(t *testing.T) {
	encode := func(offset int64, to string) *sarama.ConsumerMessage {
		data, err := json.Marshal(ReturnConfirmation(to, "Dune"))
		require.NoError(t, err)
		return &sarama.ConsumerMessage{Topic: kafka.NotificationTopic, Offset: offset, Value: data}
	}

	tests := []struct {
		name      string
		failFor   string
		wantErr   bool
		marked    []int64
		delivered []string
	}{
		{name: "all delivered", marked: []int64{0, 1, 2}, delivered: []string{"a@x.io", "b@x.io", "c@x.io"}},
		// offsets after the failed one stay unmarked so the next session redelivers it
		{name: "stops at failed delivery", failFor: "b@x.io", wantErr: true, marked: []int64{0}, delivered: []string{"a@x.io"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 3)}
			claim.messages <- encode(0, "a@x.io")
			claim.messages <- encode(1, "b@x.io")
			claim.messages <- encode(2, "c@x.io")
			close(claim.messages)

			mailer := &routingMailer{failFor: tt.failFor}
			session := &fakeSession{ctx: context.Background()}
			c := NewConsumer(mailer, zap.NewNop(), retry.WithMaxAttempts(2), retry.WithBaseDelay(0))

			err := c.ConsumeClaim(session, claim)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.marked, session.marked)
			require.Equal(t, tt.delivered, mailer.delivered)
		})
	}
}

func TestSMTPMailer_Deliver(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "mail", Port: "2525", From: "library@example.com"})
	var (
		gotAddr string
		gotTo   []string
		gotBody string
	)
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotBody = addr, to, string(msg)
		require.Equal(t, "library@example.com", from)
		return nil
	}

	msg := OverdueReminder("a@b.c", "peace", "Dune", time.Now())
	require.NoError(t, m.Deliver(context.Background(), msg))
	require.Equal(t, "mail:2525", gotAddr)
	require.Equal(t, []string{"a@b.c"}, gotTo)
	require.Contains(t, gotBody, "Subject: Overdue Book Reminder: Dune\r\n")
	require.Contains(t, gotBody, "Hi peace,\r\n")
}

func TestSMTPMailer_HeaderInjection(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "mail", Port: "25", From: "library@example.com"})
	var gotBody string
	m.send = func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
		gotBody = string(msg)
		return nil
	}

	msg := BorrowConfirmation("a@b.c", "Dune\r\nBcc: victim@evil.example", time.Now())
	require.NoError(t, m.Deliver(context.Background(), msg))

	headers, _, found := strings.Cut(gotBody, "\r\n\r\n")
	require.True(t, found)
	require.Contains(t, headers, "Subject: Borrow Confirmation: Dune  Bcc: victim@evil.example\r\n")
	for _, line := range strings.Split(headers, "\r\n") {
		require.False(t, strings.HasPrefix(line, "Bcc:"), "injected header line %q", line)
	}
}
