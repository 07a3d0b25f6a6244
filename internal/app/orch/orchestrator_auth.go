package orch

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/ChatSync/internal/app/action"
	"github.com/dkeye/ChatSync/internal/app/effects"
	"github.com/dkeye/ChatSync/internal/domain"
)

func (o *Orchestrator) authReactors() []effects.Reactor {
	return []effects.Reactor{
		effects.SwitchMap(
			"register",
			func(ctx context.Context, req action.Register) (domain.User, error) {
				return o.Auth.Register(ctx, req.Registration())
			},
			func(u domain.User) action.Action { return action.RegisterSuccess{Payload: u} },
			func(err domain.Error) action.Action { return action.RegisterFailure{Error: err} },
		),
	}
}

func (o *Orchestrator) authObservers() []effects.Observer {
	return []effects.Observer{
		effects.Tap("redirectAfterRegister", func(_ context.Context, a action.RegisterSuccess) {
			log.Info().Str("module", "orch").Str("user", string(a.Payload.ID)).Msg("signed up")
			o.Nav.Navigate(SignupCompleteView, true)
		}),
		effects.Tap("alertRegisterFailed", func(_ context.Context, a action.RegisterFailure) {
			log.Warn().Str("module", "orch").Str("error", a.Error.Message).Msg("sign up failed")
			o.Alerts.Alert(SignupFailedMsg)
		}),
	}
}
