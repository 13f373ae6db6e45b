package lead

import (
	"context"
	"errors"
	"fmt"
	"time"

	"simulador-backend/internal/domain/catalog"
	"simulador-backend/internal/domain/lead"
	"simulador-backend/internal/domain/uow"
	"simulador-backend/internal/metrics"
	"simulador-backend/pkg/id"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("simulador-backend/usecase/lead")

type Usecase struct {
	uow      uow.UnitOfWork
	repo     lead.Repository
	cache    lead.RecentCache
	notifier lead.Notifier
	log      *zap.Logger
	now      func() time.Time
}

func NewUsecase(u uow.UnitOfWork, repo lead.Repository, cache lead.RecentCache, n lead.Notifier, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{uow: u, repo: repo, cache: cache, notifier: n, log: log, now: time.Now}
}

// Submit validates the contact and stores the lead. The property row is read
// in the same transaction to denormalize its name. Cache and notification
// failures after a successful insert are only logged.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*lead.Lead, error) {
	ctx, span := tracer.Start(ctx, "lead.Submit")
	defer span.End()
	span.SetAttributes(attribute.String("property_id", in.PropertyID))

	c := in.Contact.Normalize()
	if err := c.Validate(); err != nil {
		metrics.LeadSubmissions.WithLabelValues("invalid").Inc()
		return nil, err
	}

	now := u.now().UTC()
	l := &lead.Lead{
		LeadID:             id.NewID32(),
		VisitorID:          in.VisitorID,
		Name:               c.Name,
		Email:              c.Email,
		Phone:              c.Phone,
		PropertyID:         in.PropertyID,
		VariationID:        in.VariationID,
		Consent:            c.Consent,
		MonthlyIncome:      in.MonthlyIncome,
		DownPayment:        in.Result.DownPayment,
		AmortizationSystem: string(in.Result.System),
		PropertyValue:      in.Result.PropertyValue,
		FinancedAmount:     in.Result.FinancedAmount,
		InstallmentValue:   in.Result.FirstInstallment,
		TermMonths:         in.Result.TermMonths,
		AnnualRate:         in.Result.AnnualRate,
		SubmittedAt:        now,
	}

	err := u.uow.WithinPropertyTx(ctx, in.PropertyID, func(r uow.Repos, p *catalog.Property) error {
		l.PropertyName = p.Name
		return r.Leads.Create(ctx, l)
	})
	if err != nil {
		metrics.LeadSubmissions.WithLabelValues("failed").Inc()
		span.RecordError(err)
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		u.log.Error("lead: persist failed", zap.String("property_id", in.PropertyID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", lead.ErrStoreUnavailable, err)
	}

	entry := lead.RecentEntry{Email: l.Email, PropertyID: l.PropertyID, Timestamp: now}
	if err := u.cache.Add(ctx, in.VisitorID, entry); err != nil {
		u.log.Warn("lead: recent cache add failed", zap.String("lead_id", l.LeadID), zap.Error(err))
	}
	if err := u.notifier.NotifyLead(ctx, l); err != nil {
		u.log.Warn("lead: notify failed", zap.String("lead_id", l.LeadID), zap.Error(err))
	}

	metrics.LeadSubmissions.WithLabelValues("ok").Inc()
	u.log.Info("lead captured",
		zap.String("lead_id", l.LeadID),
		zap.String("property_id", l.PropertyID),
		zap.String("system", l.AmortizationSystem),
	)
	return l, nil
}

// HasRecent reports whether the visitor sent a lead for the property within
// lead.RecentTTL. A cache failure counts as no recent lead.
func (u *Usecase) HasRecent(ctx context.Context, visitorID, propertyID string) bool {
	if visitorID == "" || propertyID == "" {
		return false
	}
	ok, err := u.cache.HasRecent(ctx, visitorID, propertyID, u.now())
	if err != nil {
		u.log.Warn("lead: recent cache read failed", zap.String("visitor_id", visitorID), zap.Error(err))
		return false
	}
	return ok
}
