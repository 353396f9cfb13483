package user

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/osse101/FishingBot_Go/internal/domain"
	"github.com/osse101/FishingBot_Go/internal/repository"
)

// FakeRepository is a stateful in-memory implementation of every collaborator
// the service needs. BeginUserTx holds a per-user lock until the transaction
// ends, and writes made inside a transaction only land on Commit.
type FakeRepository struct {
	mu        sync.Mutex
	users     map[string]domain.User
	checkIns  map[string]map[time.Time]bool
	taxes     map[string][]domain.TaxRecord
	accessory map[string]*domain.UserAccessory
	titles    map[string][]int
	templates map[domain.ItemKind]map[int]domain.ItemTemplate
	userLocks map[string]*sync.Mutex
	err       error
	updates   int
	addHook   func()
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		users:     make(map[string]domain.User),
		checkIns:  make(map[string]map[time.Time]bool),
		taxes:     make(map[string][]domain.TaxRecord),
		accessory: make(map[string]*domain.UserAccessory),
		titles:    make(map[string][]int),
		templates: make(map[domain.ItemKind]map[int]domain.ItemTemplate),
		userLocks: make(map[string]*sync.Mutex),
	}
}

func (f *FakeRepository) Repositories() Repositories {
	return Repositories{Users: f, Logs: f, Inventory: f, Templates: f, Tx: f}
}

// FailWith makes every call return err
func (f *FakeRepository) FailWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *FakeRepository) seedUser(u domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = u
}

func (f *FakeRepository) seedCheckIn(userID string, day time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.checkIns[userID] == nil {
		f.checkIns[userID] = make(map[time.Time]bool)
	}
	f.checkIns[userID][day] = true
}

func (f *FakeRepository) seedTemplate(t domain.ItemTemplate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.templates[t.Kind] == nil {
		f.templates[t.Kind] = make(map[int]domain.ItemTemplate)
	}
	f.templates[t.Kind][t.ID] = t
}

func (f *FakeRepository) seedTitles(userID string, ids ...int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.titles[userID] = append(f.titles[userID], ids...)
}

func (f *FakeRepository) seedAccessory(a domain.UserAccessory) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accessory[a.UserID] = &a
}

func (f *FakeRepository) user(id string) (domain.User, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	return u, ok
}

func (f *FakeRepository) checkInCount(userID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.checkIns[userID])
}

func (f *FakeRepository) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updates
}

// repository.User

func (f *FakeRepository) CheckExists(_ context.Context, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.users[userID]
	return ok, nil
}

func (f *FakeRepository) GetByID(_ context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *FakeRepository) Add(_ context.Context, u domain.User) error {
	if f.addHook != nil {
		f.addHook()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[u.ID]; ok {
		return domain.ErrUserAlreadyExists
	}
	f.users[u.ID] = u
	return nil
}

func (f *FakeRepository) Update(_ context.Context, u domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	f.users[u.ID] = u
	f.updates++
	return nil
}

func (f *FakeRepository) GetLeaderboardData(_ context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	users := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Coins != users[j].Coins {
			return users[i].Coins > users[j].Coins
		}
		return users[i].ID < users[j].ID
	})
	if len(users) > limit {
		users = users[:limit]
	}
	entries := make([]domain.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, domain.LeaderboardEntry{Rank: i + 1, UserID: u.ID, Nickname: u.Nickname, Coins: u.Coins})
	}
	return entries, nil
}

// repository.Log

func (f *FakeRepository) HasCheckedIn(_ context.Context, userID string, day time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	return f.checkIns[userID][day], nil
}

func (f *FakeRepository) AddCheckIn(_ context.Context, userID string, day time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.checkIns[userID][day] {
		return domain.ErrAlreadyCheckedIn
	}
	if f.checkIns[userID] == nil {
		f.checkIns[userID] = make(map[time.Time]bool)
	}
	f.checkIns[userID][day] = true
	return nil
}

func (f *FakeRepository) GetTaxRecords(_ context.Context, userID string) ([]domain.TaxRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.taxes[userID]), nil
}

// repository.Inventory

func (f *FakeRepository) GetUserEquippedAccessory(_ context.Context, userID string) (*domain.UserAccessory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.accessory[userID], nil
}

func (f *FakeRepository) GetUserTitles(_ context.Context, userID string) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.titles[userID]), nil
}

// TemplateReader

func (f *FakeRepository) template(kind domain.ItemKind, id int) (*domain.ItemTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.templates[kind][id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *FakeRepository) GetAccessoryByID(_ context.Context, id int) (*domain.ItemTemplate, error) {
	return f.template(domain.ItemKindAccessory, id)
}

func (f *FakeRepository) GetTitleByID(_ context.Context, id int) (*domain.ItemTemplate, error) {
	return f.template(domain.ItemKindTitle, id)
}

// repository.Transactor

func (f *FakeRepository) BeginUserTx(_ context.Context, userID string) (repository.UserTx, error) {
	f.mu.Lock()
	if f.err != nil {
		defer f.mu.Unlock()
		return nil, f.err
	}
	lock, ok := f.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		f.userLocks[userID] = lock
	}
	f.mu.Unlock()

	lock.Lock()
	return &fakeTx{repo: f, lock: lock}, nil
}

var errFakeTxClosed = errors.New(domain.ErrMsgTxClosed)

type fakeTx struct {
	repo     *FakeRepository
	lock     *sync.Mutex
	closed   bool
	user     *domain.User
	checkIns []fakeCheckIn
}

type fakeCheckIn struct {
	userID string
	day    time.Time
}

func (t *fakeTx) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return t.repo.GetByID(ctx, userID)
}

func (t *fakeTx) Update(ctx context.Context, u domain.User) error {
	if _, ok := t.repo.user(u.ID); !ok {
		return domain.ErrUserNotFound
	}
	t.user = &u
	return nil
}

func (t *fakeTx) HasCheckedIn(ctx context.Context, userID string, day time.Time) (bool, error) {
	for _, c := range t.checkIns {
		if c.userID == userID && c.day.Equal(day) {
			return true, nil
		}
	}
	return t.repo.HasCheckedIn(ctx, userID, day)
}

func (t *fakeTx) AddCheckIn(ctx context.Context, userID string, day time.Time) error {
	exists, err := t.HasCheckedIn(ctx, userID, day)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadyCheckedIn
	}
	t.checkIns = append(t.checkIns, fakeCheckIn{userID: userID, day: day})
	return nil
}

func (t *fakeTx) GetUserTitles(ctx context.Context, userID string) ([]int, error) {
	return t.repo.GetUserTitles(ctx, userID)
}

func (t *fakeTx) Commit(ctx context.Context) error {
	if t.closed {
		return errFakeTxClosed
	}
	t.closed = true
	defer t.lock.Unlock()

	if t.user != nil {
		if err := t.repo.Update(ctx, *t.user); err != nil {
			return err
		}
	}
	for _, c := range t.checkIns {
		if err := t.repo.AddCheckIn(ctx, c.userID, c.day); err != nil {
			return err
		}
	}
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.closed {
		return errFakeTxClosed
	}
	t.closed = true
	t.lock.Unlock()
	return nil
}
