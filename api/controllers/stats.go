package controllers

import (
	"net/http"

	"github.com/greenbites/greenbites-backend/api/responses"
	"github.com/greenbites/greenbites-backend/internal/donations"
	"github.com/greenbites/greenbites-backend/internal/requests"
	"github.com/greenbites/greenbites-backend/pkg/enums"
	pkgerrors "github.com/greenbites/greenbites-backend/pkg/errors"
	"github.com/greenbites/greenbites-backend/pkg/logger"
)

// ImpactStats returns the caller's impact snapshot. Donors see donation
// totals, seekers see request totals.
func ImpactStats(donationSvc donations.Service, requestSvc requests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		role, err := actorRole(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		switch role {
		case enums.UserRoleDonor:
			if donationSvc == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "donations service unavailable"))
				return
			}
			stats, err := donationSvc.Stats(r.Context(), userID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, stats)
		case enums.UserRoleSeeker:
			if requestSvc == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "requests service unavailable"))
				return
			}
			stats, err := requestSvc.Stats(r.Context(), userID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, stats)
		default:
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "unknown role"))
		}
	}
}
