package usecase

import (
	"context"

	"github.com/runoshun/todomaster/internal/todolist"
)

// ApplyMutationInput contains a state with a Begin transition already applied.
type ApplyMutationInput struct {
	State   todolist.State
	Pending todolist.Pending
}

// ApplyMutationOutput contains the settled state.
type ApplyMutationOutput struct {
	State   todolist.State
	Outcome todolist.Outcome
}

// ApplyMutation sends a pending mutation, settles it and persists the result.
// It runs the whole cycle synchronously for one-shot commands.
type ApplyMutation struct {
	send *SendMutation
	save *SaveTasks
}

// NewApplyMutation creates a new ApplyMutation use case.
func NewApplyMutation(send *SendMutation, save *SaveTasks) *ApplyMutation {
	return &ApplyMutation{
		send: send,
		save: save,
	}
}

// Execute runs send, settle and persist in order.
func (uc *ApplyMutation) Execute(ctx context.Context, in ApplyMutationInput) (*ApplyMutationOutput, error) {
	sent, err := uc.send.Execute(ctx, SendMutationInput{Pending: in.Pending})
	if err != nil {
		return nil, err
	}

	state, outcome := in.State.Settle(in.Pending, sent.Response)
	if outcome.Persist {
		if _, err := uc.save.Execute(ctx, SaveTasksInput{Tasks: state.Tasks}); err != nil {
			return nil, err
		}
	}

	return &ApplyMutationOutput{State: state, Outcome: outcome}, nil
}
