package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"activityboard/internal/api"
	"activityboard/internal/eventbus"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx context.Context, client api.Client, bus eventbus.EventBus) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Ctx:    ctx,
			Client: client,
			Bus:    bus,
		},
	}
}

// ExecuteRefresh creates and executes a refresh command
func (e *Executor) ExecuteRefresh() tea.Cmd {
	return NewRefreshCommand(e.ctx).Execute()
}

// ExecuteSignup creates and executes a signup command
func (e *Executor) ExecuteSignup(activity, email string) tea.Cmd {
	return NewSignupCommand(e.ctx, activity, email).Execute()
}

// ExecuteUnregister creates and executes an unregister command
func (e *Executor) ExecuteUnregister(activity, email string) tea.Cmd {
	return NewUnregisterCommand(e.ctx, activity, email).Execute()
}
