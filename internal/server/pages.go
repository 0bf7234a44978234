package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"feedindia/internal/analytics"
	"feedindia/internal/payment"
	"feedindia/internal/utils"
	"feedindia/pkg/types"
)

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	donations, err := s.donations.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list donations")
		s.internalServerError(w)
		return
	}

	accounts, err := s.accounts.Accounts(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list accounts")
		s.internalServerError(w)
		return
	}

	data := &types.HomePageData{
		BasePageData: types.BasePageData{
			Notice: r.URL.Query().Get("notice"),
			Error:  r.URL.Query().Get("error"),
		},
		Stats: homeStats(analytics.Summarize(donations, accounts, 0)),
		Steps: homeSteps(),
	}

	if err := s.renderTemplate(w, r, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleDonate(w http.ResponseWriter, r *http.Request) {
	data := &types.DonatePageData{
		BasePageData: types.BasePageData{
			Title:  "Donate",
			Notice: r.URL.Query().Get("notice"),
			Error:  r.URL.Query().Get("error"),
		},
		Categories: foodCategories(),
		Tiers:      donationTiers(),
	}

	if err := s.renderTemplate(w, r, "page.donate", data); err != nil {
		s.logger.WithError(err).Error("failed to render donate page")
		s.internalServerError(w)
		return
	}
}

// handleDonateCheckout starts a payment for one of the fixed tiers. Without a
// gateway the donor only gets the redirect notice.
func (s *Service) handleDonateCheckout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, "/donate", "invalid form payload")
		return
	}

	tier, ok := findTier(r.PostFormValue("amount"))
	if !ok {
		s.redirectWithError(w, r, "/donate", "Please choose one of the listed donation amounts")
		return
	}

	amountPaise := tier.AmountRupees * 100
	notice := fmt.Sprintf("You will be redirected to our secure payment portal for %s", payment.FormatRupees(amountPaise))

	if s.payments == nil {
		s.redirectWithNotice(w, r, "/donate", notice)
		return
	}

	intent, err := s.payments.CreateIntent(r.Context(), payment.Charge{
		AmountPaise:    amountPaise,
		Purpose:        tier.Purpose,
		IdempotencyKey: utils.NanoID(),
	})
	if err != nil {
		s.logger.WithError(err).WithField("amount_paise", amountPaise).Error("failed to start checkout")
		s.redirectWithError(w, r, "/donate", "Unable to reach the payment portal, please try again")
		return
	}

	s.logger.WithField("reference", intent.Reference).Info("checkout started")
	s.redirectWithNotice(w, r, "/donate", fmt.Sprintf("%s (reference %s)", notice, intent.Reference))
}

func findTier(amount string) (types.DonationTier, bool) {
	rupees, err := strconv.ParseInt(strings.TrimSpace(amount), 10, 64)
	if err != nil {
		return types.DonationTier{}, false
	}
	for _, tier := range donationTiers() {
		if tier.AmountRupees == rupees {
			return tier, true
		}
	}
	return types.DonationTier{}, false
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func required(v string) bool {
	return strings.TrimSpace(v) != ""
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// isNotFound reports store lookups that should render the not found view.
func isNotFound(err error) bool {
	return errors.Is(err, types.ErrDonationNotFound) || errors.Is(err, types.ErrAccountNotFound)
}
