package action

import "github.com/dkeye/ChatSync/internal/domain"

const (
	TypeRegister        Type = "[Auth] Register"
	TypeRegisterSuccess Type = "[Auth] Register Success"
	TypeRegisterFailure Type = "[Auth] Register Failure"
)

type Register struct {
	req
	Name     string
	Email    string
	Password string
}

type RegisterSuccess struct {
	kind
	Payload domain.User
}

type RegisterFailure struct {
	kind
	Error domain.Error
}

func (Register) Type() Type        { return TypeRegister }
func (RegisterSuccess) Type() Type { return TypeRegisterSuccess }
func (RegisterFailure) Type() Type { return TypeRegisterFailure }

func (a RegisterFailure) Err() domain.Error { return a.Error }

// Registration converts the request into the service input.
func (a Register) Registration() domain.Registration {
	return domain.Registration{Name: a.Name, Email: a.Email, Password: a.Password}
}
