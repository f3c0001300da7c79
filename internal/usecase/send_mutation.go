package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todomaster/internal/domain"
	"github.com/runoshun/todomaster/internal/todolist"
)

// SendMutationInput contains the request to send.
type SendMutationInput struct {
	Pending todolist.Pending
}

// SendMutationOutput contains the service's answer.
type SendMutationOutput struct {
	Response todolist.Response
}

// SendMutation issues the remote request behind a pending mutation.
// It never mutates local state; the caller settles the response.
type SendMutation struct {
	service domain.TaskService
	logger  domain.Logger
}

// NewSendMutation creates a new SendMutation use case.
func NewSendMutation(service domain.TaskService, logger domain.Logger) *SendMutation {
	return &SendMutation{
		service: service,
		logger:  logger,
	}
}

// Execute sends the request. Service failures are returned inside the
// Response; the error result is reserved for an unknown operation.
func (uc *SendMutation) Execute(ctx context.Context, in SendMutationInput) (*SendMutationOutput, error) {
	p := in.Pending
	var resp todolist.Response

	switch p.Op {
	case todolist.OpCreate:
		resp.Task, resp.Err = uc.service.Create(ctx, p.Text)
	case todolist.OpToggle, todolist.OpEdit:
		resp.Task, resp.Err = uc.service.Update(ctx, p.ID, p.Patch())
	case todolist.OpDelete:
		resp.Err = uc.service.Delete(ctx, p.ID)
	default:
		return nil, fmt.Errorf("send mutation: unknown operation %d", p.Op)
	}

	if resp.Err != nil {
		uc.logger.Warn(p.Op.String(), fmt.Sprintf("task %s: %v", p.ID, resp.Err))
	} else {
		uc.logger.Debug(p.Op.String(), fmt.Sprintf("task %s: ok", p.ID))
	}
	return &SendMutationOutput{Response: resp}, nil
}
