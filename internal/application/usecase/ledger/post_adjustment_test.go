// Package ledger contains ledger posting use cases.
package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/repairdesk/backend/internal/application/adapter"
	"github.com/repairdesk/backend/internal/domain/entity"
	domainerror "github.com/repairdesk/backend/internal/domain/error"
)

type fakePartyRepo struct {
	parties map[uuid.UUID]*entity.Party
}

func newFakePartyRepo(parties ...*entity.Party) *fakePartyRepo {
	repo := &fakePartyRepo{parties: make(map[uuid.UUID]*entity.Party)}
	for _, p := range parties {
		repo.parties[p.ID] = p
	}
	return repo
}

func (r *fakePartyRepo) Create(_ context.Context, party *entity.Party) error {
	r.parties[party.ID] = party
	return nil
}

func (r *fakePartyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Party, error) {
	p, ok := r.parties[id]
	if !ok {
		return nil, domainerror.ErrPartyNotFound
	}
	return p, nil
}

func (r *fakePartyRepo) ListByKind(_ context.Context, kind entity.PartyKind) ([]*entity.Party, error) {
	var out []*entity.Party
	for _, p := range r.parties {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePartyRepo) Update(_ context.Context, id uuid.UUID, _ adapter.PartyPatch) (*entity.Party, error) {
	p, ok := r.parties[id]
	if !ok {
		return nil, domainerror.ErrPartyNotFound
	}
	return p, nil
}

func (r *fakePartyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.parties, id)
	return nil
}

type fakeLedgerRepo struct {
	parties *fakePartyRepo
	entries []*entity.LedgerEntry
	postErr error
}

func (r *fakeLedgerRepo) Post(ctx context.Context, partyID uuid.UUID, kind entity.AdjustmentKind, amount decimal.Decimal, description string) (*entity.Party, error) {
	if r.postErr != nil {
		return nil, r.postErr
	}
	party, err := r.parties.FindByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if err := party.Apply(kind, amount); err != nil {
		return nil, err
	}
	r.entries = append(r.entries, entity.NewLedgerEntry(partyID, kind, amount, description))
	return party, nil
}

func (r *fakeLedgerRepo) ListByParty(_ context.Context, partyID uuid.UUID) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if e.PartyID == partyID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeSummaryCache struct {
	invalidations int
}

func (c *fakeSummaryCache) Get(_ context.Context, _ string, _ interface{}) (bool, error) {
	return false, nil
}

func (c *fakeSummaryCache) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (c *fakeSummaryCache) Invalidate(_ context.Context) error {
	c.invalidations++
	return nil
}

func TestPostAdjustmentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	setup := func(parties ...*entity.Party) (*PostAdjustmentUseCase, *fakeLedgerRepo, *fakeSummaryCache) {
		partyRepo := newFakePartyRepo(parties...)
		ledgerRepo := &fakeLedgerRepo{parties: partyRepo}
		summaryCache := &fakeSummaryCache{}
		return NewPostAdjustmentUseCase(partyRepo, ledgerRepo, summaryCache), ledgerRepo, summaryCache
	}

	t.Run("posts an adjustment and returns the updated party", func(t *testing.T) {
		customer := entity.NewParty(entity.PartyKindCustomer, "Ayşe Yılmaz", "05551234567", "", "", "")
		uc, ledgerRepo, summaryCache := setup(customer)

		out, err := uc.Execute(ctx, PostAdjustmentInput{
			PartyID:     customer.ID,
			Kind:        entity.AdjustmentDebtAdd,
			Amount:      decimal.NewFromInt(150),
			Description: "screen replacement on account",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Party.Debt.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected debt 150, got %s", out.Party.Debt)
		}
		if len(ledgerRepo.entries) != 1 {
			t.Fatalf("expected 1 ledger entry, got %d", len(ledgerRepo.entries))
		}
		if ledgerRepo.entries[0].Kind != entity.AdjustmentDebtAdd {
			t.Errorf("expected entry kind debt_add, got %s", ledgerRepo.entries[0].Kind)
		}
		if summaryCache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", summaryCache.invalidations)
		}
	})

	t.Run("rejects non-positive amounts before touching the ledger", func(t *testing.T) {
		customer := entity.NewParty(entity.PartyKindCustomer, "Ayşe Yılmaz", "", "", "", "")
		uc, ledgerRepo, summaryCache := setup(customer)

		_, err := uc.Execute(ctx, PostAdjustmentInput{
			PartyID: customer.ID,
			Kind:    entity.AdjustmentDebtAdd,
			Amount:  decimal.Zero,
		})

		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeNonPositiveAmount {
			t.Fatalf("expected non-positive amount error, got %v", err)
		}
		if len(ledgerRepo.entries) != 0 {
			t.Errorf("expected no ledger entries, got %d", len(ledgerRepo.entries))
		}
		if summaryCache.invalidations != 0 {
			t.Errorf("expected no cache invalidations, got %d", summaryCache.invalidations)
		}
	})

	t.Run("unknown party yields a not-found error", func(t *testing.T) {
		uc, _, _ := setup()

		_, err := uc.Execute(ctx, PostAdjustmentInput{
			PartyID: uuid.New(),
			Kind:    entity.AdjustmentDebtAdd,
			Amount:  decimal.NewFromInt(100),
		})

		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeLedgerPartyNotFound {
			t.Fatalf("expected party not-found error, got %v", err)
		}
		if !errors.Is(err, domainerror.ErrPartyNotFound) {
			t.Errorf("expected error to wrap ErrPartyNotFound, got %v", err)
		}
	})

	t.Run("supplier-only kinds are rejected for customers without posting", func(t *testing.T) {
		customer := entity.NewParty(entity.PartyKindCustomer, "Ayşe Yılmaz", "", "", "", "")
		uc, ledgerRepo, _ := setup(customer)

		_, err := uc.Execute(ctx, PostAdjustmentInput{
			PartyID: customer.ID,
			Kind:    entity.AdjustmentPurchase,
			Amount:  decimal.NewFromInt(400),
		})

		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeKindNotAllowed {
			t.Fatalf("expected kind-not-allowed error, got %v", err)
		}
		if len(ledgerRepo.entries) != 0 {
			t.Errorf("expected no ledger entries, got %d", len(ledgerRepo.entries))
		}
		if !customer.Debt.IsZero() {
			t.Errorf("expected debt unchanged, got %s", customer.Debt)
		}
	})

	t.Run("overpayment clamps debt at zero", func(t *testing.T) {
		customer := entity.NewParty(entity.PartyKindCustomer, "Ayşe Yılmaz", "", "", "", "")
		customer.Debt = decimal.NewFromInt(300)
		uc, _, _ := setup(customer)

		out, err := uc.Execute(ctx, PostAdjustmentInput{
			PartyID: customer.ID,
			Kind:    entity.AdjustmentPaymentReceived,
			Amount:  decimal.NewFromInt(1000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Party.Debt.IsZero() {
			t.Errorf("expected debt 0, got %s", out.Party.Debt)
		}
		if !out.Party.Credit.IsZero() {
			t.Errorf("expected credit to stay 0, got %s", out.Party.Credit)
		}
	})

	t.Run("persistence failures surface to the caller", func(t *testing.T) {
		customer := entity.NewParty(entity.PartyKindCustomer, "Ayşe Yılmaz", "", "", "", "")
		uc, ledgerRepo, summaryCache := setup(customer)
		ledgerRepo.postErr = errors.New("connection reset")

		_, err := uc.Execute(ctx, PostAdjustmentInput{
			PartyID: customer.ID,
			Kind:    entity.AdjustmentDebtAdd,
			Amount:  decimal.NewFromInt(50),
		})
		if err == nil || err.Error() != "connection reset" {
			t.Fatalf("expected the repository error, got %v", err)
		}
		if summaryCache.invalidations != 0 {
			t.Errorf("expected no cache invalidations, got %d", summaryCache.invalidations)
		}
	})
}
