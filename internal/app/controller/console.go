package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/ChatSync/internal/app/action"
	"github.com/dkeye/ChatSync/internal/app/store"
	"github.com/dkeye/ChatSync/internal/core"
	"github.com/dkeye/ChatSync/internal/domain"
)

const (
	NotSignedInMsg = "Please sign in first"
	UsageMsg       = "Unknown command, type help"
	NoHistoryMsg   = "Nothing to go back to"
)

const help = `commands:
  signup <name> <email> <password>
  me <id>            load yourself
  user <id>          view a profile
  rename <name>      change your name
  block <id>         block a user
  room <userId>      find your room with a user
  open <roomId>      open a room
  chat <userId>      start a room with a user
  back               return to the previous view
  state              print the current state
  quit
`

type Store interface {
	store.Dispatcher
	State() store.State
}

// Navigator is a core.Navigator that can also step back through history.
type Navigator interface {
	core.Navigator
	Back() (string, bool)
}

type Console struct {
	store  Store
	signup *SignupController
	nav    Navigator
	alerts core.Alerter
	out    io.Writer
}

func NewConsole(st Store, signup *SignupController, nav Navigator, alerts core.Alerter, out io.Writer) *Console {
	return &Console{store: st, signup: signup, nav: nav, alerts: alerts, out: out}
}

var errQuit = errors.New("quit")

// Run reads commands from in until it is exhausted, quit is typed or ctx is
// done.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if err := c.Exec(line); errors.Is(err, errQuit) {
				return nil
			}
		}
	}
}

// Exec runs a single command line.
func (c *Console) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	log.Debug().Str("module", "app.controller").Str("cmd", cmd).Msg("console command")

	switch cmd {
	case "quit", "exit":
		return errQuit
	case "help":
		fmt.Fprint(c.out, help)
		return nil
	case "state":
		c.printState()
		return nil
	case "back":
		if path, ok := c.nav.Back(); ok {
			fmt.Fprintf(c.out, "view: %s\n", path)
		} else {
			c.alerts.Alert(NoHistoryMsg)
		}
		return nil
	case "signup":
		if len(args) != 3 {
			c.alerts.Alert(InvalidFormMsg)
			return nil
		}
		c.signup.Submit(SignupForm{Name: args[0], Email: args[1], Password: args[2]})
		return nil
	}

	if len(args) != 1 {
		c.alerts.Alert(UsageMsg)
		return nil
	}
	arg := args[0]

	switch cmd {
	case "me":
		c.store.Dispatch(action.GetCurrentUser{UserID: domain.UserID(arg)})
		return nil
	case "user":
		c.nav.Navigate("/home/users/"+arg, false)
		c.store.Dispatch(action.GetUserByID{UserID: domain.UserID(arg)})
		return nil
	case "block":
		c.store.Dispatch(action.BlockUser{UserID: domain.UserID(arg)})
		return nil
	}

	me, ok := store.CurrentUserID(c.store.State())
	if !ok {
		c.alerts.Alert(NotSignedInMsg)
		return nil
	}
	switch cmd {
	case "rename":
		c.store.Dispatch(action.UpdateCurrentUser{UserID: me, Data: domain.UserUpdate{Name: &arg}})
	case "room":
		c.store.Dispatch(action.GetRoom{CurrentUserID: me, UserID: domain.UserID(arg)})
	case "open":
		c.nav.Navigate("/home/messages/"+arg, false)
		c.store.Dispatch(action.GetRoomByID{CurrentUserID: me, RoomID: domain.RoomID(arg)})
	case "chat":
		c.store.Dispatch(action.CreateRoom{CurrentUserID: me, UserID: domain.UserID(arg)})
	default:
		c.alerts.Alert(UsageMsg)
	}
	return nil
}

func (c *Console) printState() {
	st := c.store.State()
	if u := store.CurrentUser(st); u != nil {
		fmt.Fprintf(c.out, "me:      %s (%s) blocked=%v\n", u.Name, u.ID, u.Blocked)
	} else {
		fmt.Fprintln(c.out, "me:      -")
	}
	if u := store.ViewedUser(st); u != nil {
		fmt.Fprintf(c.out, "viewing: %s (%s)\n", u.Name, u.ID)
	}
	if r := store.CurrentRoom(st); r != nil {
		names := make([]string, 0, len(r.Participants))
		for _, p := range r.Participants {
			names = append(names, p.Name)
		}
		fmt.Fprintf(c.out, "room:    %s [%s]\n", r.ID, strings.Join(names, ", "))
	}
	for _, sel := range []store.Selector[*domain.Error]{store.AuthError, store.UserError, store.RoomError} {
		if e := sel(st); e != nil {
			fmt.Fprintf(c.out, "error:   %s\n", e.Message)
		}
	}
	if store.IsLoading(st) {
		fmt.Fprintln(c.out, "loading...")
	}
}
