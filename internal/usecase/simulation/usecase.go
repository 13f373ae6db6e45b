package simulation

import (
	"context"
	"fmt"
	"time"

	"simulador-backend/internal/domain/catalog"
	"simulador-backend/internal/domain/financing"
	"simulador-backend/internal/domain/lead"
	"simulador-backend/internal/domain/wizard"
	"simulador-backend/internal/metrics"
	leaduc "simulador-backend/internal/usecase/lead"
	"simulador-backend/pkg/id"
	"simulador-backend/pkg/money"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("simulador-backend/usecase/simulation")

// Usecase runs wizard sessions: it loads a session, feeds the action to the
// reducer and persists what changed.
type Usecase struct {
	sessions wizard.SessionStore
	flags    wizard.FlagStore
	reducer  *wizard.Reducer
	catalog  PropertyReader
	leads    LeadService
	log      *zap.Logger
	now      func() time.Time
}

func NewUsecase(
	sessions wizard.SessionStore,
	flags wizard.FlagStore,
	reducer *wizard.Reducer,
	props PropertyReader,
	leads LeadService,
	log *zap.Logger,
) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{
		sessions: sessions,
		flags:    flags,
		reducer:  reducer,
		catalog:  props,
		leads:    leads,
		log:      log,
		now:      time.Now,
	}
}

// Start opens a session for the visitor, seeded with the durable flag.
func (u *Usecase) Start(ctx context.Context, visitorID string) (*wizard.Session, error) {
	completed, err := u.flags.Completed(ctx, visitorID)
	if err != nil {
		u.log.Warn("simulation: read lead flag failed", zap.String("visitor_id", visitorID), zap.Error(err))
		completed = false
	}

	now := u.now().UTC()
	s := &wizard.Session{
		ID:        id.NewID32(),
		VisitorID: visitorID,
		State:     wizard.New(completed),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

// Get returns the session if it belongs to visitorID.
func (u *Usecase) Get(ctx context.Context, visitorID, sessionID string) (*wizard.Session, error) {
	return u.owned(ctx, visitorID, sessionID)
}

// SelectProperty resolves the property and variation through the catalog.
// An empty variationID picks the first variation.
func (u *Usecase) SelectProperty(ctx context.Context, visitorID, sessionID, propertyID, variationID string) (*wizard.Session, error) {
	s, err := u.load(ctx, visitorID, sessionID, wizard.SelectProperty{})
	if err != nil {
		return nil, err
	}

	p, err := u.catalog.Get(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	v, ok := p.Variation(variationID)
	if !ok {
		return nil, fmt.Errorf("%w: variation %q of %q", catalog.ErrNotFound, variationID, propertyID)
	}

	return u.apply(ctx, s, wizard.SelectProperty{PropertyID: p.ID, PropertyName: p.Name, Variation: v})
}

func (u *Usecase) UpdateInputs(ctx context.Context, visitorID, sessionID string, in InputsUpdate) (*wizard.Session, error) {
	s, err := u.load(ctx, visitorID, sessionID, wizard.SetMonthlyIncome{})
	if err != nil {
		return nil, err
	}

	var actions []wizard.Action
	if in.MonthlyIncome != nil {
		actions = append(actions, wizard.SetMonthlyIncome{Raw: *in.MonthlyIncome})
	}
	if in.DownPayment != nil {
		actions = append(actions, wizard.SetDownPayment{Raw: *in.DownPayment})
	}
	if in.System != nil {
		actions = append(actions, wizard.SetSystem{System: *in.System})
	}
	if in.Indexer != nil {
		actions = append(actions, wizard.SetIndexer{Indexer: *in.Indexer})
	}
	return u.apply(ctx, s, actions...)
}

// Submit requests the calculation. A recent lead for the selected property
// lets the session skip the lead form.
func (u *Usecase) Submit(ctx context.Context, visitorID, sessionID string) (*wizard.Session, error) {
	ctx, span := tracer.Start(ctx, "simulation.Submit")
	defer span.End()

	s, err := u.load(ctx, visitorID, sessionID, wizard.SubmitFinancialData{})
	if err != nil {
		return nil, err
	}
	recent := u.leads.HasRecent(ctx, s.VisitorID, s.State.SelectedPropertyID)
	span.SetAttributes(
		attribute.String("property_id", s.State.SelectedPropertyID),
		attribute.Bool("recent_lead", recent),
	)
	return u.apply(ctx, s, wizard.SubmitFinancialData{LeadAlreadyCaptured: recent})
}

// SubmitLead persists the contact and only then moves to the result. On any
// failure the session stays on the lead form.
func (u *Usecase) SubmitLead(ctx context.Context, visitorID, sessionID string, c lead.Contact) (*wizard.Session, *lead.Lead, error) {
	ctx, span := tracer.Start(ctx, "simulation.SubmitLead")
	defer span.End()

	s, err := u.load(ctx, visitorID, sessionID, wizard.LeadSubmitted{})
	if err != nil {
		return nil, nil, err
	}
	st := s.State
	if st.Result == nil {
		return nil, nil, wizard.ErrWrongStage
	}

	in := leaduc.SubmitInput{
		VisitorID:     s.VisitorID,
		Contact:       c,
		PropertyID:    st.SelectedPropertyID,
		MonthlyIncome: money.FromCents(st.MonthlyIncomeInput),
		Result:        *st.Result,
	}
	if st.SelectedVariation != nil {
		in.VariationID = st.SelectedVariation.ID
	}
	l, err := u.leads.Submit(ctx, in)
	if err != nil {
		span.RecordError(err)
		return s, nil, err
	}

	s, err = u.apply(ctx, s, wizard.LeadSubmitted{})
	if err != nil {
		return nil, l, err
	}
	return s, l, nil
}

func (u *Usecase) Back(ctx context.Context, visitorID, sessionID string) (*wizard.Session, error) {
	s, err := u.load(ctx, visitorID, sessionID, wizard.Back{})
	if err != nil {
		return nil, err
	}
	return u.apply(ctx, s, wizard.Back{})
}

func (u *Usecase) Reset(ctx context.Context, visitorID, sessionID string) (*wizard.Session, error) {
	s, err := u.load(ctx, visitorID, sessionID, wizard.Reset{})
	if err != nil {
		return nil, err
	}
	return u.apply(ctx, s, wizard.Reset{})
}

// owned fetches the session. A session started by another visitor is
// reported as not found.
func (u *Usecase) owned(ctx context.Context, visitorID, sessionID string) (*wizard.Session, error) {
	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if visitorID == "" || s.VisitorID != visitorID {
		return nil, wizard.ErrSessionNotFound
	}
	return s, nil
}

// load fetches an owned session and checks that its stage accepts next.
func (u *Usecase) load(ctx context.Context, visitorID, sessionID string, next wizard.Action) (*wizard.Session, error) {
	s, err := u.owned(ctx, visitorID, sessionID)
	if err != nil {
		return nil, err
	}
	if !s.State.Accepts(next) {
		return nil, fmt.Errorf("%w: %s in %s", wizard.ErrWrongStage, next.Name(), s.State.Stage)
	}
	return s, nil
}

func (u *Usecase) apply(ctx context.Context, s *wizard.Session, actions ...wizard.Action) (*wizard.Session, error) {
	before := s.State.LeadFormCompleted
	for _, a := range actions {
		s.State = u.reducer.Reduce(s.State, a)
		metrics.WizardTransitions.WithLabelValues(a.Name(), s.State.Stage.String()).Inc()
		if _, ok := a.(wizard.SubmitFinancialData); ok {
			st := s.State
			metrics.Calculations.WithLabelValues(string(st.System), string(st.Indexer), calculationOutcome(st)).Inc()
		}
	}

	if s.State.LeadFormCompleted != before {
		if err := u.flags.SetCompleted(ctx, s.VisitorID, s.State.LeadFormCompleted); err != nil {
			u.log.Warn("simulation: write lead flag failed", zap.String("visitor_id", s.VisitorID), zap.Error(err))
		}
	}

	s.UpdatedAt = u.now().UTC()
	if err := u.sessions.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return s, nil
}

func calculationOutcome(st wizard.State) string {
	switch st.Error {
	case "":
		return "ok"
	case financing.MsgCalculationFailed:
		return "error"
	default:
		return "invalid"
	}
}
