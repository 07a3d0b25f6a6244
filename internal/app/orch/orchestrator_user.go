package orch

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/ChatSync/internal/app/action"
	"github.com/dkeye/ChatSync/internal/app/effects"
	"github.com/dkeye/ChatSync/internal/app/store"
	"github.com/dkeye/ChatSync/internal/domain"
)

func (o *Orchestrator) userReactors() []effects.Reactor {
	return []effects.Reactor{
		effects.SwitchMap(
			"getCurrentUser",
			func(ctx context.Context, req action.GetCurrentUser) (domain.User, error) {
				return o.Users.GetUser(ctx, req.UserID)
			},
			func(u domain.User) action.Action { return action.GetCurrentUserSuccess{Payload: u} },
			func(err domain.Error) action.Action { return action.GetCurrentUserFailure{Error: err} },
		),
		effects.SwitchMap(
			"updateCurrentUser",
			func(ctx context.Context, req action.UpdateCurrentUser) (domain.User, error) {
				return o.Users.UpdateUser(ctx, req.UserID, req.Data)
			},
			func(u domain.User) action.Action { return action.UpdateCurrentUserSuccess{Payload: u} },
			func(err domain.Error) action.Action { return action.UpdateCurrentUserFailure{Error: err} },
		),
		effects.SwitchMap(
			"getUserById",
			func(ctx context.Context, req action.GetUserByID) (domain.User, error) {
				return o.Users.GetUser(ctx, req.UserID)
			},
			func(u domain.User) action.Action { return action.GetUserByIDSuccess{Payload: u} },
			func(err domain.Error) action.Action { return action.GetUserByIDFailure{Error: err} },
		),
		// The acting user is whoever is current when the request is admitted.
		effects.SwitchMapWithLatest(
			"blockUser",
			store.CurrentUserID,
			func(ctx context.Context, req action.BlockUser, currentUserID domain.UserID) (domain.User, error) {
				return o.Users.BlockUser(ctx, currentUserID, req.UserID)
			},
			func(u domain.User) action.Action { return action.BlockUserSuccess{Payload: u} },
			func(err domain.Error) action.Action { return action.BlockUserFailure{Error: err} },
		),
	}
}

func (o *Orchestrator) userObservers() []effects.Observer {
	return []effects.Observer{
		effects.Tap("redirectAfterGetUserByIdFailed", func(_ context.Context, a action.GetUserByIDFailure) {
			log.Info().Str("module", "orch").Str("error", a.Error.Message).Str("to", o.defaultView()).Msg("user lookup failed, redirecting")
			o.Nav.Navigate(o.defaultView(), true)
		}),
	}
}
