package orch

import (
	"github.com/dkeye/ChatSync/internal/app/effects"
	"github.com/dkeye/ChatSync/internal/core"
)

const (
	DefaultView        = "/home/messages"
	SignupCompleteView = "/login/signup/complete"

	SignupFailedMsg = "Could not sign you up, please try again."
)

// Orchestrator binds every use case to its service port and to the
// presentation side effects that follow its outcomes.
type Orchestrator struct {
	Users  core.UserService
	Rooms  core.RoomService
	Auth   core.AuthService
	Nav    core.Navigator
	Alerts core.Alerter
	// DefaultView is where a failed user lookup redirects. Empty means DefaultView.
	DefaultView string
}

func (o *Orchestrator) Reactors() []effects.Reactor {
	var rs []effects.Reactor
	rs = append(rs, o.authReactors()...)
	rs = append(rs, o.userReactors()...)
	rs = append(rs, o.roomReactors()...)
	return rs
}

func (o *Orchestrator) Observers() []effects.Observer {
	var os []effects.Observer
	os = append(os, o.authObservers()...)
	os = append(os, o.userObservers()...)
	return os
}

// Bind registers every effect with e. Call before e.Start.
func (o *Orchestrator) Bind(e *effects.Engine) {
	e.Register(o.Reactors()...)
	e.Observe(o.Observers()...)
}

func (o *Orchestrator) defaultView() string {
	if o.DefaultView == "" {
		return DefaultView
	}
	return o.DefaultView
}
