package server

import (
	"net/http"
	"net/url"

	"feedindia/pkg/types"
)

type UserDetailPageData struct {
	types.BasePageData
	Account   *types.UserAccount
	Display   types.AccountTypeDisplay
	Donations []*types.Donation
}

func userNotFound() *types.NotFoundPageData {
	return &types.NotFoundPageData{
		BasePageData: types.BasePageData{Title: "User Not Found"},
		Heading:      "User Not Found",
		Message:      "The user you are looking for does not exist.",
		BackHref:     "/admin?tab=users",
		BackLabel:    "Back to Admin",
	}
}

func (s *Service) handleUserDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("userID")

	account, err := s.accounts.Account(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			s.renderNotFound(w, r, userNotFound())
			return
		}
		s.logger.WithError(err).WithField("user_id", userID).Error("failed to fetch account")
		s.internalServerError(w)
		return
	}

	scope, err := s.accounts.DonationsFor(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("failed to resolve user donations")
		s.internalServerError(w)
		return
	}

	donations, err := scope.List(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("failed to list user donations")
		s.internalServerError(w)
		return
	}

	if s.config.DeriveDonationCounts {
		account.DonationCount = len(donations)
	}

	data := &UserDetailPageData{
		BasePageData: types.BasePageData{
			Title:  account.Name,
			Notice: r.URL.Query().Get("notice"),
			Error:  r.URL.Query().Get("error"),
		},
		Account:   account,
		Display:   types.AccountTypeDisplayFor(account.AccountType),
		Donations: donations,
	}

	if err := s.renderTemplate(w, r, "page.user-detail", data); err != nil {
		s.logger.WithError(err).Error("failed to render user detail page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleUpdateUserDonationStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.PathValue("userID")

	scope, err := s.accounts.DonationsFor(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			s.renderNotFound(w, r, userNotFound())
			return
		}
		s.logger.WithError(err).WithField("user_id", userID).Error("failed to resolve user donations")
		s.internalServerError(w)
		return
	}

	back := "/admin/users/" + url.PathEscape(userID)
	s.updateStatus(w, r, scope, back, back, "Back to User")
}
