package commands

import (
	"context"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"activityboard/internal/api"
	"activityboard/internal/domain"
	"activityboard/internal/eventbus"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx    context.Context
	Client api.Client
	Bus    eventbus.EventBus
}

func (c *CommandContext) publish(event domain.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(event)
	}
}

// RefreshCommand fetches the activity listing
type RefreshCommand struct {
	ctx *CommandContext
}

// NewRefreshCommand creates a new refresh command
func NewRefreshCommand(ctx *CommandContext) *RefreshCommand {
	return &RefreshCommand{ctx: ctx}
}

// Execute performs the fetch off the update loop
func (c *RefreshCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		coll, err := c.ctx.Client.ListActivities(c.ctx.Ctx)
		if err != nil {
			log.Printf("executor: refresh failed: %v", err)
			c.ctx.publish(domain.ActivitiesLoadFailedEvent{Err: err})
			return ActivitiesFailedMsg{Err: err}
		}
		c.ctx.publish(domain.ActivitiesLoadedEvent{Count: coll.Len(), Names: coll.Names()})
		return ActivitiesLoadedMsg{Collection: coll}
	}
}

// MutationCommand signs an email up for, or unregisters it from, an activity
type MutationCommand struct {
	ctx      *CommandContext
	op       domain.MutationOp
	activity string
	email    string
}

// NewSignupCommand creates a new signup command
func NewSignupCommand(ctx *CommandContext, activity, email string) *MutationCommand {
	return &MutationCommand{ctx: ctx, op: domain.OpSignup, activity: activity, email: strings.TrimSpace(email)}
}

// NewUnregisterCommand creates a new unregister command
func NewUnregisterCommand(ctx *CommandContext, activity, email string) *MutationCommand {
	return &MutationCommand{ctx: ctx, op: domain.OpUnregister, activity: activity, email: email}
}

// Execute sends the request and interprets the answer
func (c *MutationCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		var (
			res api.Result
			err error
		)
		switch c.op {
		case domain.OpUnregister:
			res, err = c.ctx.Client.Unregister(c.ctx.Ctx, c.activity, c.email)
		default:
			res, err = c.ctx.Client.Signup(c.ctx.Ctx, c.activity, c.email)
		}

		msg := Interpret(c.op, c.activity, c.email, res, err)
		switch msg.Outcome {
		case OutcomeSucceeded:
			c.ctx.publish(domain.MutationSucceededEvent{Op: c.op, Activity: c.activity, Email: c.email, Message: msg.Text})
		case OutcomeRejected:
			c.ctx.publish(domain.MutationRejectedEvent{Op: c.op, Activity: c.activity, Email: c.email, StatusCode: res.StatusCode, Detail: res.Detail})
		default:
			log.Printf("executor: %s %q for %q failed: %v", c.op, c.activity, c.email, err)
			c.ctx.publish(domain.MutationFailedEvent{Op: c.op, Activity: c.activity, Email: c.email, Err: err})
		}
		return msg
	}
}
