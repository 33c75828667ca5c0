package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/notify"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SendOverdueReminders notifies the reader of every active borrow due before now.
// It never mutates the ledger and may run alongside user operations.
func (s *Service) SendOverdueReminders(ctx context.Context, now time.Time) (model.ReminderReport, error) {
	overdue, err := s.repo.OverdueBorrows(ctx, now)
	if err != nil {
		return model.ReminderReport{}, err
	}

	var sent, skipped, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reminderWorkers)
	for _, b := range overdue {
		if b.Email == "" {
			skipped.Add(1)
			s.log.Info("reminder skipped, no email", zap.String("username", b.Username), zap.String("title", b.BookTitle))
			continue
		}
		b := b
		g.Go(func() error {
			msg := notify.OverdueReminder(b.Email, b.Username, b.BookTitle, *b.DueDate)
			if err := s.notifier.Send(gctx, msg); err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				failed.Add(1)
				s.log.Warn("reminder failed", zap.Int64("borrow_id", b.ID), zap.Error(err))
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.ReminderReport{}, err
	}

	report := model.ReminderReport{
		Overdue: len(overdue),
		Sent:    int(sent.Load()),
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}
	s.log.Info("overdue reminders", zap.Any("report", report))
	return report, nil
}

// RemindNow runs the sweep at the current time on behalf of staff.
func (s *Service) RemindNow(ctx context.Context, p auth.Principal) (model.ReminderReport, error) {
	if err := checkStaff(p); err != nil {
		return model.ReminderReport{}, err
	}
	return s.SendOverdueReminders(ctx, s.now())
}
