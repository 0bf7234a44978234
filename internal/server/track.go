package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"feedindia/internal/delay"
	"feedindia/internal/store"
	"feedindia/internal/tracking"
	"feedindia/pkg/types"
)

type TrackPageData struct {
	types.BasePageData
	Query    string
	Timeline *tracking.Timeline
}

func (s *Service) handleTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimSpace(r.URL.Query().Get("id"))

	data := &TrackPageData{
		BasePageData: types.BasePageData{Title: "Track Donation"},
		Query:        id,
	}

	if id != "" {
		sessionID := s.sessionIDFromContext(ctx)
		timeline, err := delay.Run(ctx, s.searchDelay(), func() (*tracking.Timeline, error) {
			return s.lookupTimeline(context.WithoutCancel(ctx), sessionID, id)
		})
		if err != nil {
			if isNotFound(err) {
				s.renderNotFound(w, r, &types.NotFoundPageData{
					BasePageData: types.BasePageData{Title: "Donation Not Found"},
					Heading:      "Donation Not Found",
					Message:      "No donation matches " + id + ". Check the ID on your confirmation and try again.",
					BackHref:     "/track",
					BackLabel:    "Back to Tracking",
				})
				return
			}
			if errors.Is(err, context.Canceled) {
				return
			}
			s.logger.WithError(err).WithField("donation_id", id).Error("failed to track donation")
			s.internalServerError(w)
			return
		}
		data.Timeline = timeline
	}

	if err := s.renderTemplate(w, r, "page.track", data); err != nil {
		s.logger.WithError(err).Error("failed to render track page")
		s.internalServerError(w)
		return
	}
}

// lookupTimeline searches the global collection first, then the donor's own
// session.
func (s *Service) lookupTimeline(ctx context.Context, sessionID, id string) (*tracking.Timeline, error) {
	scopes := []store.DonationStore{s.donations}
	if session, ok := s.sessions.Lookup(sessionID); ok {
		scopes = append(scopes, session)
	}

	var lastErr error
	for _, scope := range scopes {
		donation, err := scope.Donation(ctx, id)
		if err != nil {
			lastErr = err
			if isNotFound(err) {
				continue
			}
			return nil, err
		}

		events, err := scope.Events(ctx, id)
		if err != nil {
			return nil, err
		}

		return tracking.Build(donation, events), nil
	}

	return nil, lastErr
}
