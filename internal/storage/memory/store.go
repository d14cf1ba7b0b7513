package memory

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/storage"
)

// Ensure Store satisfies the storage.Store interface at compile time.
var _ storage.Store = (*Store)(nil)

const dateLayout = "2006-01-02"

type account struct {
	user    models.User
	balance decimal.Decimal
}

type transfer struct {
	from, to    models.UserID
	amount      decimal.Decimal
	date        string
	description string
}

type payment struct {
	payer models.UserID
	models.Payment
}

// Store keeps the fixture backend's state in process. All methods are safe
// for concurrent use.
type Store struct {
	mu         sync.Mutex
	nextID     int
	accounts   map[models.UserID]*account
	byPhone    map[string]models.UserID
	merchants  map[string]decimal.Decimal
	promotions []models.Promotion
	transfers  []transfer
	payments   []payment
}

// New creates a Store loaded with seed.
func New(seed Seed) (*Store, error) {
	s := &Store{
		nextID:    1,
		accounts:  map[models.UserID]*account{},
		byPhone:   map[string]models.UserID{},
		merchants: map[string]decimal.Decimal{},
	}
	for _, a := range seed.Accounts {
		if _, err := s.insert(a.Name, a.Phone, a.Balance); err != nil {
			return nil, fmt.Errorf("seed account %s: %w", a.Phone, err)
		}
	}
	for _, m := range seed.Merchants {
		s.merchants[m] = decimal.Zero
	}
	s.promotions = slices.Clone(seed.Promotions)

	for _, t := range seed.Transfers {
		from, ok := s.byPhone[t.FromPhone]
		to, ok2 := s.byPhone[t.ToPhone]
		if !ok || !ok2 {
			return nil, fmt.Errorf("seed transfer %s -> %s: %w", t.FromPhone, t.ToPhone, storage.ErrNotFound)
		}
		s.transfers = append(s.transfers, transfer{from: from, to: to, amount: t.Amount, date: t.Date, description: t.Description})
	}
	for _, p := range seed.Payments {
		payer, ok := s.byPhone[p.PayerPhone]
		if !ok {
			return nil, fmt.Errorf("seed payment %s: %w", p.Payment.Code, storage.ErrNotFound)
		}
		s.payments = append(s.payments, payment{payer: payer, Payment: p.Payment})
	}
	return s, nil
}

func (s *Store) insert(name, phone string, balance decimal.Decimal) (models.User, error) {
	if _, exists := s.byPhone[phone]; exists {
		return models.User{}, storage.ErrAlreadyExists
	}
	id := models.UserID(strconv.Itoa(s.nextID))
	s.nextID++
	user := models.User{ID: id, Name: name, Phone: phone}
	s.accounts[id] = &account{user: user, balance: balance}
	s.byPhone[phone] = id
	return user, nil
}

func (s *Store) CreateUser(_ context.Context, name, phone string, balance decimal.Decimal) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(name, phone, balance)
}

func (s *Store) FindByPhone(_ context.Context, phone string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byPhone[phone]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return s.accounts[id].user, nil
}

func (s *Store) FindUser(_ context.Context, id models.UserID) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return a.user, nil
}

func (s *Store) Balance(_ context.Context, id models.UserID) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return decimal.Zero, storage.ErrNotFound
	}
	return a.balance, nil
}

func (s *Store) Transfer(_ context.Context, from models.UserID, toPhone string, amount decimal.Decimal, description string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sender, ok := s.accounts[from]
	if !ok {
		return fmt.Errorf("sender %s: %w", from, storage.ErrNotFound)
	}
	to, ok := s.byPhone[toPhone]
	if !ok {
		return fmt.Errorf("recipient %s: %w", toPhone, storage.ErrNotFound)
	}
	if sender.balance.LessThan(amount) {
		return storage.ErrInsufficientBalance
	}

	sender.balance = sender.balance.Sub(amount)
	recipient := s.accounts[to]
	recipient.balance = recipient.balance.Add(amount)
	s.transfers = append(s.transfers, transfer{
		from:        from,
		to:          to,
		amount:      amount,
		date:        at.Format(dateLayout),
		description: description,
	})
	return nil
}

func (s *Store) Outgoing(_ context.Context, id models.UserID) ([]models.OutgoingTransfer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return nil, storage.ErrNotFound
	}
	out := []models.OutgoingTransfer{}
	for _, t := range s.transfers {
		if t.from == id {
			out = append(out, models.OutgoingTransfer{
				RecipientName: s.accounts[t.to].user.Name,
				Amount:        t.amount,
				Date:          t.date,
				Description:   t.description,
			})
		}
	}
	return out, nil
}

func (s *Store) Incoming(_ context.Context, id models.UserID) ([]models.IncomingTransfer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return nil, storage.ErrNotFound
	}
	in := []models.IncomingTransfer{}
	for _, t := range s.transfers {
		if t.to == id {
			in = append(in, models.IncomingTransfer{
				SenderName:  s.accounts[t.from].user.Name,
				Amount:      t.amount,
				Date:        t.date,
				Description: t.description,
			})
		}
	}
	return in, nil
}

func (s *Store) Promotions(_ context.Context) ([]models.PromotionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PromotionSummary, 0, len(s.promotions))
	for _, p := range s.promotions {
		out = append(out, p.PromotionSummary)
	}
	return out, nil
}

func (s *Store) Promotion(_ context.Context, id string) (models.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.findPromotion(id)
	if !ok {
		return models.Promotion{}, storage.ErrNotFound
	}
	return p, nil
}

func (s *Store) findPromotion(id string) (models.Promotion, bool) {
	for _, p := range s.promotions {
		if p.ID == id {
			return p, true
		}
	}
	return models.Promotion{}, false
}

func (s *Store) PayPromotion(_ context.Context, promotionID string, payer models.UserID, code string, at time.Time) (models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	promo, ok := s.findPromotion(promotionID)
	if !ok {
		return models.Payment{}, fmt.Errorf("promotion %s: %w", promotionID, storage.ErrNotFound)
	}
	acct, ok := s.accounts[payer]
	if !ok {
		return models.Payment{}, fmt.Errorf("payer %s: %w", payer, storage.ErrNotFound)
	}
	if !withinValidity(promo, at) {
		return models.Payment{}, storage.ErrExpired
	}
	merchant, ok := s.merchants[promo.Store]
	if !ok {
		return models.Payment{}, storage.ErrStoreNotFound
	}
	price := promo.DiscountedPrice()
	if acct.balance.LessThan(price) {
		return models.Payment{}, storage.ErrInsufficientBalance
	}

	acct.balance = acct.balance.Sub(price)
	s.merchants[promo.Store] = merchant.Add(price)
	p := models.Payment{
		Recipient: promo.Store,
		Amount:    price,
		Product:   promo.Product,
		Date:      at.Format(dateLayout),
		Code:      code,
	}
	s.payments = append(s.payments, payment{payer: payer, Payment: p})
	return p, nil
}

func (s *Store) Payments(_ context.Context, id models.UserID) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Payment{}
	for _, p := range s.payments {
		if p.payer == id {
			out = append(out, p.Payment)
		}
	}
	return out, nil
}

// withinValidity compares calendar days; an empty bound is open.
func withinValidity(p models.Promotion, at time.Time) bool {
	day := at.Format(dateLayout)
	if p.ValidFrom != "" && day < p.ValidFrom {
		return false
	}
	if p.ValidUntil != "" && day > p.ValidUntil {
		return false
	}
	return true
}
