// Package controller turns user input into request actions.
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/ChatSync/internal/app/action"
	"github.com/dkeye/ChatSync/internal/app/store"
	"github.com/dkeye/ChatSync/internal/core"
)

const InvalidFormMsg = "Please fill all required fields"

type SignupForm struct {
	Name     string `validate:"required,min=5,max=20"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

type SignupController struct {
	dispatch store.Dispatcher
	alerts   core.Alerter
	validate *validator.Validate
}

func NewSignupController(d store.Dispatcher, alerts core.Alerter) *SignupController {
	return &SignupController{
		dispatch: d,
		alerts:   alerts,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Submit dispatches a register request for a valid form. An invalid form is
// alerted and never reaches the action stream.
func (c *SignupController) Submit(f SignupForm) bool {
	if err := c.validate.Struct(f); err != nil {
		log.Debug().Str("module", "app.controller").Err(err).Msg("signup form rejected")
		c.alerts.Alert(InvalidFormMsg)
		return false
	}
	c.dispatch.Dispatch(action.Register{Name: f.Name, Email: f.Email, Password: f.Password})
	return true
}
