package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"feedindia/internal/analytics"
	"feedindia/internal/filter"
	"feedindia/internal/storage"
	"feedindia/internal/store"
	"feedindia/pkg/types"

	"github.com/sirupsen/logrus"
)

const (
	adminTabDonations = "donations"
	adminTabUsers     = "users"
	adminTabAnalytics = "analytics"

	topDonorCount = 5
)

type AdminPageData struct {
	types.BasePageData
	Tab            string
	Criteria       filter.DonationCriteria
	UserCriteria   filter.AccountCriteria
	Donations      []*types.Donation
	TotalDonations int
	Accounts       []*types.UserAccount
	TotalAccounts  int
	Summary        analytics.Summary
	Kinds          []types.DonationKind
	AccountTypes   []types.AccountType
	FilterQuery    string
	ExportToBucket bool
}

// StatusAction posts back with the current filters so the redirect lands on
// the same view.
func (d *AdminPageData) StatusAction(id string) template.URL {
	return template.URL(withQuery("/admin/donations/"+url.PathEscape(id)+"/status", d.FilterQuery))
}

func (d *AdminPageData) ExportAction() template.URL {
	return template.URL(withQuery("/admin/donations/export", d.FilterQuery))
}

func adminTab(v string) string {
	switch v {
	case adminTabUsers, adminTabAnalytics:
		return v
	}
	return adminTabDonations
}

func (s *Service) handleAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	data := &AdminPageData{
		BasePageData: types.BasePageData{
			Title:  "Admin Dashboard",
			Notice: query.Get("notice"),
			Error:  query.Get("error"),
		},
		Tab:            adminTab(query.Get("tab")),
		Kinds:          []types.DonationKind{types.DonationKindFood, types.DonationKindMonetary, types.DonationKindSupplies},
		AccountTypes:   []types.AccountType{types.AccountTypeIndividual, types.AccountTypeOrganization, types.AccountTypeCorporate},
		ExportToBucket: s.exports != nil,
	}

	switch data.Tab {
	case adminTabDonations:
		if err := decoder.Decode(&data.Criteria, query); err != nil {
			s.logger.WithError(err).Warn("ignoring undecodable donation filters")
		}
	case adminTabUsers:
		if err := decoder.Decode(&data.UserCriteria, query); err != nil {
			s.logger.WithError(err).Warn("ignoring undecodable user filters")
		}
	}

	query.Del("notice")
	query.Del("error")
	data.FilterQuery = query.Encode()

	donations, err := s.donations.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list donations")
		s.internalServerError(w)
		return
	}

	accounts, err := s.listAccounts(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list accounts")
		s.internalServerError(w)
		return
	}

	data.TotalDonations = len(donations)
	data.TotalAccounts = len(accounts)
	data.Donations = filter.Donations(donations, data.Criteria)
	data.Accounts = filter.Accounts(accounts, data.UserCriteria)
	data.Summary = analytics.Summarize(donations, accounts, topDonorCount)

	if err := s.renderTemplate(w, r, "page.admin", data); err != nil {
		s.logger.WithError(err).Error("failed to render admin page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) listAccounts(ctx context.Context) ([]*types.UserAccount, error) {
	accounts, err := s.accounts.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	if !s.config.DeriveDonationCounts {
		return accounts, nil
	}

	return store.WithDerivedCounts(ctx, s.accounts, accounts)
}

func (s *Service) handleUpdateDonationStatus(w http.ResponseWriter, r *http.Request) {
	back := withQuery("/admin", r.URL.RawQuery)
	s.updateStatus(w, r, s.donations, back, "/admin", "Back to Admin")
}

// updateStatus applies the posted status to one record of scope and returns
// to back with the outcome.
func (s *Service) updateStatus(w http.ResponseWriter, r *http.Request, scope store.DonationStore, back, notFoundHref, notFoundLabel string) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := r.ParseForm(); err != nil {
		s.redirectWithError(w, r, back, "invalid form payload")
		return
	}

	status := types.DonationStatus(r.PostFormValue("status"))

	updated, err := scope.UpdateStatus(ctx, id, status)
	if err != nil {
		var (
			verr *types.ValidationError
			terr *types.TransitionError
		)
		switch {
		case isNotFound(err):
			s.renderNotFound(w, r, &types.NotFoundPageData{
				BasePageData: types.BasePageData{Title: "Donation Not Found"},
				Heading:      "Donation Not Found",
				Message:      fmt.Sprintf("Donation %s does not exist.", id),
				BackHref:     notFoundHref,
				BackLabel:    notFoundLabel,
			})
		case errors.As(err, &verr):
			s.redirectWithError(w, r, back, fmt.Sprintf("%q is not a valid donation status", status))
		case errors.As(err, &terr):
			s.redirectWithError(w, r, back, fmt.Sprintf(
				"Donation %s cannot move from %s to %s",
				id, types.StatusDisplayFor(terr.From).Label, types.StatusDisplayFor(terr.To).Label,
			))
		default:
			s.logger.WithError(err).WithField("donation_id", id).Error("failed to update donation status")
			s.internalServerError(w)
		}
		return
	}

	actor, _ := s.userIDFromContext(ctx)
	s.logger.WithFields(logrus.Fields{
		"donation_id": id,
		"status":      updated.Status,
		"actor":       actor,
	}).Info("donation status updated")

	s.redirectWithNotice(w, r, back, fmt.Sprintf(
		"Status Updated: Donation %s status changed to %s",
		id, types.StatusDisplayFor(updated.Status).Label,
	))
}

// handleExportDonations exports the donations matching the current filters.
func (s *Service) handleExportDonations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var criteria filter.DonationCriteria
	if err := decoder.Decode(&criteria, r.URL.Query()); err != nil {
		s.logger.WithError(err).Warn("ignoring undecodable donation filters")
	}

	donations, err := s.donations.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list donations")
		s.internalServerError(w)
		return
	}

	body, err := storage.DonationsCSV(filter.Donations(donations, criteria))
	if err != nil {
		s.logger.WithError(err).Error("failed to render donation export")
		s.internalServerError(w)
		return
	}

	now := time.Now()
	key := storage.ExportKey(now)

	if s.exports == nil {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "donations-"+now.UTC().Format("20060102T150405Z")+".csv"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}

	back := withQuery("/admin", r.URL.RawQuery)

	location, err := s.exports.Upload(ctx, key, body, "text/csv")
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Error("failed to upload donation export")
		s.redirectWithError(w, r, back, "Export failed, please try again")
		return
	}

	s.logger.WithField("location", location).Info("donation export uploaded")
	s.redirectWithNotice(w, r, back, "Export uploaded to "+location)
}
