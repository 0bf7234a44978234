package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"feedindia/internal/delay"
	"feedindia/internal/payment"
	"feedindia/internal/store"
	"feedindia/internal/utils"
	"feedindia/pkg/types"

	"github.com/sirupsen/logrus"
)

const donationPostedNotice = "Donation Posted! Your donation has been listed. A volunteer will contact you soon."

func newDashboardPageData(form *types.DonationCandidate, donations []*types.Donation) *types.DashboardPageData {
	return &types.DashboardPageData{
		BasePageData:   types.BasePageData{Title: "Donor Dashboard"},
		Form:           form,
		MissingFields:  map[string]bool{},
		Donations:      donations,
		DonationTypes:  types.DonationTypeOptions,
		PaymentMethods: types.PaymentMethodOptions,
		Purposes:       types.PurposeOptions,
		Windows:        types.WindowOptions,
	}
}

func (s *Service) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	donations, err := s.sessions.Store(s.sessionIDFromContext(ctx)).List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list session donations")
		s.internalServerError(w)
		return
	}

	data := newDashboardPageData(new(types.DonationCandidate), donations)
	data.Notice = r.URL.Query().Get("notice")
	data.Error = r.URL.Query().Get("error")

	if err := s.renderTemplate(w, r, "page.dashboard", data); err != nil {
		s.logger.WithError(err).Error("failed to render dashboard page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handlePostDonation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := s.sessionIDFromContext(ctx)
	donations := s.sessions.Store(sessionID)

	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/dashboard", "invalid form payload")
		return
	}

	candidate := new(types.DonationCandidate)
	if err := decoder.Decode(candidate, r.PostForm); err != nil {
		s.logger.WithError(err).Error("failed to decode donation form")
		s.redirectWithError(w, r, "/dashboard", "invalid form payload")
		return
	}

	if err := candidate.Validate(); err != nil {
		s.renderDonationErrors(w, r, donations, candidate, err)
		return
	}

	if err := s.chargeMonetary(ctx, candidate); err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			s.renderDonationErrors(w, r, donations, candidate, err)
			return
		}
		s.logger.WithError(err).Error("failed to create payment intent")
		s.redirectWithError(w, r, "/dashboard", "Unable to reach the payment portal, please try again")
		return
	}

	// The submission completes even if the donor stops waiting for it.
	submitCtx := context.WithoutCancel(ctx)
	donation, err := delay.Run(ctx, s.submitDelay(), func() (*types.Donation, error) {
		return s.submit(submitCtx, donations, candidate)
	})
	if err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			s.renderDonationErrors(w, r, donations, candidate, err)
			return
		}
		if errors.Is(err, context.Canceled) {
			return
		}
		s.logger.WithError(err).Error("failed to submit donation")
		s.internalServerError(w)
		return
	}

	s.logger.WithFields(logrus.Fields{
		"donation_id": donation.ID,
		"kind":        donation.Kind,
		"session_id":  sessionID,
	}).Info("donation submitted")

	s.redirectWithNotice(w, r, "/dashboard", donationPostedNotice)
}

// submit stores the candidate in the intake backend when one is configured
// and keeps the accepted record in the donor's session so the dashboard
// lists it.
func (s *Service) submit(ctx context.Context, session *store.MemoryDonationStore, candidate *types.DonationCandidate) (*types.Donation, error) {
	if s.intake == nil {
		return session.Submit(ctx, candidate)
	}

	donation, err := s.intake.Submit(ctx, candidate)
	if err != nil {
		return nil, err
	}

	if err := session.Add(donation); err != nil {
		return nil, fmt.Errorf("failed to record donation %s in session: %w", donation.ID, err)
	}

	return donation, nil
}

// chargeMonetary creates a payment intent for monetary candidates when a
// gateway is configured and records its reference on the candidate.
func (s *Service) chargeMonetary(ctx context.Context, candidate *types.DonationCandidate) error {
	kind, _ := types.ParseDonationKind(candidate.Kind)
	if kind != types.DonationKindMonetary || s.payments == nil {
		return nil
	}

	amount, err := payment.ParseRupees(candidate.Amount)
	if err != nil {
		return &types.ValidationError{Fields: []string{"amount"}}
	}

	intent, err := s.payments.CreateIntent(ctx, payment.Charge{
		AmountPaise:    amount,
		Purpose:        candidate.Purpose,
		Method:         candidate.PaymentMethod,
		DonorName:      candidate.DonorName,
		IdempotencyKey: utils.NanoID(),
	})
	if err != nil {
		return err
	}

	candidate.PaymentReference = intent.Reference
	return nil
}

func (s *Service) renderDonationErrors(w http.ResponseWriter, r *http.Request, donations store.DonationStore, candidate *types.DonationCandidate, err error) {
	list, listErr := donations.List(r.Context())
	if listErr != nil {
		s.logger.WithError(listErr).Error("failed to list session donations")
		s.internalServerError(w)
		return
	}

	data := newDashboardPageData(candidate, list)
	data.Error = missingFieldsMessage(candidate, err)

	var verr *types.ValidationError
	if errors.As(err, &verr) {
		for _, field := range verr.Fields {
			data.MissingFields[field] = true
		}
	}

	if err := s.renderTemplateStatus(w, r, http.StatusUnprocessableEntity, "page.dashboard", data); err != nil {
		s.logger.WithError(err).Error("failed to render dashboard page")
		s.internalServerError(w)
	}
}

func missingFieldsMessage(candidate *types.DonationCandidate, err error) string {
	var verr *types.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}

	switch {
	case verr.Has("donationType"):
		return "Missing Information: Please select a donation type."
	case len(verr.Fields) == 1 && verr.Has("amount") && candidate.Amount != "":
		return "Please enter a valid amount, e.g. 1500 or ₹15,000."
	}

	if kind, _ := types.ParseDonationKind(candidate.Kind); kind == types.DonationKindMonetary {
		return "Missing Information: Please fill in amount, payment method, and purpose."
	}
	return "Missing Information: Please fill in all required fields."
}
