package digest

import (
	"context"
	"log"
	"time"

	emailService "github.com/sebuszqo/ExpenseTracker/internal/email"
	"github.com/sebuszqo/ExpenseTracker/internal/ledger/application"
	"github.com/sebuszqo/ExpenseTracker/internal/ledger/domain"
	"github.com/sebuszqo/ExpenseTracker/internal/user"
)

type UserProvider interface {
	ListUsers(ctx context.Context) ([]user.User, error)
}

type EntryProvider interface {
	List(ctx context.Context, ownerID string) ([]domain.Entry, error)
}

// Service composes the previous day's summary per user and queues a digest
// email for everyone who recorded at least one entry that day.
type Service struct {
	users   UserProvider
	entries EntryProvider
	emails  emailService.EmailSender

	now func() time.Time
}

func NewService(users UserProvider, entries EntryProvider, emails emailService.EmailSender) *Service {
	return &Service{
		users:   users,
		entries: entries,
		emails:  emails,
		now:     time.Now,
	}
}

func (s *Service) Run(ctx context.Context) error {
	yesterday := s.now().UTC().AddDate(0, 0, -1)

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return err
	}

	queued := 0
	for _, u := range users {
		entries, err := s.entries.List(ctx, u.ID)
		if err != nil {
			log.Printf("Digest: could not list entries for user %s: %v", u.ID, err)
			continue
		}

		dayEntries := application.FilterByDate(entries, yesterday)
		if len(dayEntries) == 0 {
			continue
		}

		summary := application.Summarize(dayEntries)
		s.emails.QueueEmail(u.Email, emailService.DailyDigestData{
			UserName: u.Name,
			Date:     yesterday.Format("2006-01-02"),
			Income:   summary.Income.String(),
			Expense:  summary.Expense.String(),
			Balance:  summary.Balance.String(),
			Entries:  len(dayEntries),
		})
		queued++
	}

	log.Printf("Digest run finished: %d emails queued for %d users", queued, len(users))
	return nil
}
