package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"paint_quote/internal/domain/entities"
	"paint_quote/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

var (
	ErrOperationInProgress = fmt.Errorf("%w: another request is still in progress", entities.ErrLocal)
	ErrUnsavedQuotation    = fmt.Errorf("%w: cannot delete unsaved record", entities.ErrLocal)
	ErrEditUnsaved         = fmt.Errorf("%w: cannot edit unsaved record", entities.ErrLocal)
)

// LifecycleState is the position of the quotation lifecycle.
//
//   - New: EditingID empty, Submitting false
//   - Editing(id): EditingID set, Submitting false
//   - Submitting(from): Submitting true, EditingID tells which state it came from
type LifecycleState struct {
	EditingID  string
	Submitting bool
}

func (s LifecycleState) IsNew() bool     { return s.EditingID == "" && !s.Submitting }
func (s LifecycleState) IsEditing() bool { return s.EditingID != "" && !s.Submitting }

func (s LifecycleState) String() string {
	from := "new"
	if s.EditingID != "" {
		from = "editing(" + s.EditingID + ")"
	}
	if s.Submitting {
		return "submitting(" + from + ")"
	}
	return from
}

// QuotationLifecycle decides whether a submit creates or updates a quotation and keeps
// the displayed quotation in step with what the repository acknowledged.
//
// The mutex guards state only; it is never held across a repository call. At most one
// submit or delete is in flight at a time.
type QuotationLifecycle struct {
	rates     *RateStore
	engine    PricingEngine
	repo      interfaces.IQuotationRepository
	presenter interfaces.IPresenter
	now       func() time.Time

	mu       sync.Mutex
	state    LifecycleState
	inFlight bool
	current  *entities.Quotation
	draft    *entities.QuotationInput
	lastErr  error
}

func NewQuotationLifecycle(rates *RateStore, repo interfaces.IQuotationRepository, presenter interfaces.IPresenter) *QuotationLifecycle {
	return &QuotationLifecycle{
		rates:     rates,
		repo:      repo,
		presenter: presenter,
		now:       time.Now,
	}
}

// Start loads rates and history concurrently. The two loads are independent: pricing
// waits only on the rates, and a history failure does not affect it.
func (l *QuotationLifecycle) Start(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		if err := l.rates.Load(ctx); err != nil {
			l.presenter.Notify(UserMessage(err), true)
			return err
		}
		l.presenter.Notify("Rates loaded successfully", false)
		return nil
	})
	g.Go(func() error {
		return l.RefreshHistory(ctx)
	})
	return g.Wait()
}

// RefreshHistory lists the stored quotations and hands them to the presenter.
func (l *QuotationLifecycle) RefreshHistory(ctx context.Context) error {
	quotations, err := l.repo.List(ctx)
	if err != nil {
		log.Printf("[quotation][lifecycle] history refresh failed err=%v", err)
		l.presenter.Notify(UserMessage(err), true)
		return err
	}
	l.presenter.RenderHistory(quotations)
	return nil
}

// Lookup resolves a stored quotation by id through the repository.
func (l *QuotationLifecycle) Lookup(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	quotations, err := l.repo.List(ctx)
	if err != nil {
		return entities.Quotation{}, err
	}
	for _, q := range quotations {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.Quotation{}, entities.ErrQuotationNotFound
}

// BeginEdit makes q the active draft; the next submit updates it.
func (l *QuotationLifecycle) BeginEdit(q entities.Quotation) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inFlight {
		return ErrOperationInProgress
	}
	id := strings.TrimSpace(q.ID)
	if id == "" {
		return ErrEditUnsaved
	}
	draft := q.Input()
	l.state = LifecycleState{EditingID: id}
	l.draft = &draft
	log.Printf("[quotation][lifecycle] begin edit id=%s", id)
	return nil
}

// CancelEdit drops the draft and returns to New without touching the repository.
func (l *QuotationLifecycle) CancelEdit() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inFlight {
		return ErrOperationInProgress
	}
	if l.state.IsEditing() {
		log.Printf("[quotation][lifecycle] cancel edit id=%s", l.state.EditingID)
	}
	l.state = LifecycleState{}
	l.draft = nil
	return nil
}

// Submit prices input and persists it: a create from New, an update from Editing.
//
// Validation and rate readiness are checked before any state change. A repository
// failure restores the prior state and keeps the draft for a retry.
func (l *QuotationLifecycle) Submit(ctx context.Context, input entities.QuotationInput) (entities.Quotation, error) {
	in := input.Normalize()

	l.mu.Lock()
	if l.inFlight {
		l.mu.Unlock()
		return entities.Quotation{}, ErrOperationInProgress
	}
	l.draft = &in
	if err := validateInput(in); err != nil {
		return entities.Quotation{}, l.rejectLocked(err)
	}
	rates, err := l.rates.Current()
	if err != nil {
		return entities.Quotation{}, l.rejectLocked(err)
	}

	prior := l.state
	l.state = LifecycleState{EditingID: prior.EditingID, Submitting: true}
	l.inFlight = true
	l.mu.Unlock()

	breakdown := l.engine.Compute(in, rates)
	draft := entities.NewQuotation(in, breakdown, rates, l.now())

	var saved entities.Quotation
	if prior.EditingID == "" {
		log.Printf("[quotation][lifecycle] create start client=%q grand_total=%.2f", in.FullName, breakdown.GrandTotal)
		saved, err = l.repo.Create(ctx, draft)
	} else {
		draft.ID = prior.EditingID
		log.Printf("[quotation][lifecycle] update start id=%s grand_total=%.2f", prior.EditingID, breakdown.GrandTotal)
		saved, err = l.repo.Update(ctx, prior.EditingID, draft)
	}

	l.mu.Lock()
	l.inFlight = false
	if err != nil {
		l.state = prior
		l.lastErr = err
		l.mu.Unlock()
		log.Printf("[quotation][lifecycle] submit failed state=%s err=%v", prior, err)
		l.presenter.Notify(UserMessage(err), true)
		return entities.Quotation{}, err
	}
	l.state = LifecycleState{}
	l.current = &saved
	l.draft = nil
	l.lastErr = nil
	l.mu.Unlock()

	log.Printf("[quotation][lifecycle] submit success id=%s", saved.ID)
	current := saved
	l.presenter.RenderCurrent(&current)
	if prior.EditingID == "" {
		l.presenter.Notify("Quotation saved successfully", false)
	} else {
		l.presenter.Notify("Quotation updated successfully", false)
	}
	_ = l.RefreshHistory(ctx)
	return saved, nil
}

// Delete removes a stored quotation. Deleting the displayed quotation clears it and
// resets the lifecycle to New; history is refreshed after every successful delete.
func (l *QuotationLifecycle) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	l.mu.Lock()
	if l.inFlight {
		l.mu.Unlock()
		return ErrOperationInProgress
	}
	if id == "" {
		return l.rejectLocked(ErrUnsavedQuotation)
	}
	l.inFlight = true
	l.mu.Unlock()

	log.Printf("[quotation][lifecycle] delete start id=%s", id)
	err := l.repo.Delete(ctx, id)

	l.mu.Lock()
	l.inFlight = false
	if err != nil {
		l.lastErr = err
		l.mu.Unlock()
		log.Printf("[quotation][lifecycle] delete failed id=%s err=%v", id, err)
		l.presenter.Notify(UserMessage(err), true)
		return err
	}
	cleared := false
	if l.current != nil && l.current.ID == id {
		l.current = nil
		cleared = true
	}
	if cleared || l.state.EditingID == id {
		l.state = LifecycleState{}
		l.draft = nil
	}
	l.lastErr = nil
	l.mu.Unlock()

	log.Printf("[quotation][lifecycle] delete success id=%s cleared_current=%t", id, cleared)
	if cleared {
		l.presenter.RenderCurrent(nil)
	}
	l.presenter.Notify("Quotation deleted", false)
	_ = l.RefreshHistory(ctx)
	return nil
}

// rejectLocked records err, releases the lock and reports err to the presenter.
// State is left untouched.
func (l *QuotationLifecycle) rejectLocked(err error) error {
	l.lastErr = err
	l.mu.Unlock()
	log.Printf("[quotation][lifecycle] rejected err=%v", err)
	l.presenter.Notify(UserMessage(err), true)
	return err
}

func (l *QuotationLifecycle) State() LifecycleState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Current returns the last quotation acknowledged by the repository, or nil.
func (l *QuotationLifecycle) Current() *entities.Quotation {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == nil {
		return nil
	}
	q := *l.current
	return &q
}

// Draft returns the input kept for editing or retry, or nil.
func (l *QuotationLifecycle) Draft() *entities.QuotationInput {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.draft == nil {
		return nil
	}
	d := *l.draft
	return &d
}

func (l *QuotationLifecycle) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// UserMessage turns an error into text for the user. Client errors from the service
// are shown verbatim; server and transport failures get a generic retry hint.
func UserMessage(err error) string {
	var netErr *entities.NetworkError
	var valErr *entities.ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &valErr):
		return "Please fill in all required fields correctly: " + strings.Join(valErr.Fields, ", ")
	case errors.Is(err, entities.ErrRatesUnavailable):
		return "Rates are still loading or failed to load. Please make sure the quotation service is running and reload the rates."
	case errors.Is(err, entities.ErrQuotationNotFound):
		return "That quotation no longer exists."
	case errors.Is(err, ErrOperationInProgress):
		return "Another request is still in progress. Please wait."
	case errors.Is(err, ErrUnsavedQuotation):
		return "Cannot delete a quotation that has not been saved."
	case errors.Is(err, ErrEditUnsaved):
		return "Cannot edit a quotation that has not been saved."
	case errors.As(err, &netErr):
		if netErr.IsClientError() {
			if netErr.Message != "" {
				return netErr.Message
			}
			return fmt.Sprintf("The request was rejected (%d %s).", netErr.Status, http.StatusText(netErr.Status))
		}
		return "Could not reach the quotation service. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
