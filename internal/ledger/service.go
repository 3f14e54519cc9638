package ledger

import (
	"fjacquet/weekledger/internal/dateutils"
	"fjacquet/weekledger/internal/logging"
	"fjacquet/weekledger/internal/models"
	"fjacquet/weekledger/internal/store"
	"fjacquet/weekledger/internal/summary"
	"fjacquet/weekledger/internal/week"
)

// Service is the single entry point for ledger mutations and week
// views. It is synchronous and single-threaded: one call runs to
// completion before the next, and every successful mutation is followed
// by a full save through the store.
type Service struct {
	store  store.Store
	log    logging.Logger
	ledger *Ledger
	anchor dateutils.Date
}

// NewService loads the ledger once and anchors the week view on today.
// A load failure is logged and yields an empty ledger; it is never
// surfaced to the caller.
func NewService(st store.Store, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	svc := &Service{
		store:  st,
		log:    logger,
		anchor: dateutils.Today(),
	}

	records, err := st.Load()
	if err != nil {
		logger.WithError(err).Warn("Could not load ledger, starting empty")
		records = nil
	}
	svc.ledger = NewLedger(records)
	return svc
}

// AddExpense validates the raw inputs, prepends the record and saves.
// On a validation error the ledger is untouched and nothing is written.
func (s *Service) AddExpense(description, amount, category, date string) (models.Expense, error) {
	expense, err := models.NewExpenseBuilder().
		WithDescription(description).
		WithAmountString(amount).
		WithCategoryString(category).
		WithDateString(date).
		Build()
	if err != nil {
		return models.Expense{}, err
	}

	s.ledger.Add(expense)
	s.persist()
	s.log.Info("Expense recorded",
		logging.Field{Key: logging.FieldExpenseID, Value: expense.ID},
		logging.Field{Key: logging.FieldCategory, Value: expense.Category.String()})
	return expense, nil
}

// DeleteExpense removes the record with the given id and reports
// whether anything was removed. Unknown ids are a quiet no-op and do
// not rewrite the file.
func (s *Service) DeleteExpense(id string) bool {
	removed := s.ledger.RemoveByID(id)
	if !removed {
		s.log.Debug("No expense with that id",
			logging.Field{Key: logging.FieldExpenseID, Value: id})
		return false
	}

	s.persist()
	s.log.Info("Expense removed",
		logging.Field{Key: logging.FieldExpenseID, Value: id})
	return true
}

// ImportExpenses prepends prebuilt records in the given order with one
// save at the end, and returns how many entered the ledger.
func (s *Service) ImportExpenses(records []models.Expense) int {
	if len(records) == 0 {
		return 0
	}
	for _, record := range records {
		s.ledger.Add(record)
	}
	s.persist()
	s.log.Info("Expenses imported",
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return len(records)
}

// SetAnchor moves week navigation to the week containing d. The zero
// date is ignored.
func (s *Service) SetAnchor(d dateutils.Date) {
	if d.IsZero() {
		s.log.Debug("Ignoring zero anchor date")
		return
	}
	s.anchor = d
}

// Anchor returns the current anchor date.
func (s *Service) Anchor() dateutils.Date {
	return s.anchor
}

// NextWeek shifts the anchor seven days forward.
func (s *Service) NextWeek() {
	s.anchor = s.anchor.AddDays(7)
}

// PreviousWeek shifts the anchor seven days back.
func (s *Service) PreviousWeek() {
	s.anchor = s.anchor.AddDays(-7)
}

// Window returns the Monday-to-Sunday window around the current anchor.
func (s *Service) Window() week.Window {
	return week.WindowFor(s.anchor)
}

// Expenses returns the whole ledger, newest insertion first.
func (s *Service) Expenses() []models.Expense {
	return s.ledger.Records()
}

// WeekExpenses returns the ledger filtered to the anchor week,
// preserving ledger order.
func (s *Service) WeekExpenses() []models.Expense {
	return week.Filter(s.ledger.Records(), s.Window())
}

// WeekTotals aggregates the anchor week per category.
func (s *Service) WeekTotals() summary.Totals {
	return summary.Aggregate(s.WeekExpenses())
}

// persist writes the full ledger. Failures are logged and swallowed:
// the in-memory state is already updated and remains the source of
// truth for this session.
func (s *Service) persist() {
	if err := s.store.Save(s.ledger.Records()); err != nil {
		s.log.WithError(err).Warn("Could not save ledger")
	}
}
