package tui

import (
	"github.com/runoshun/todomaster/internal/todolist"
	"github.com/runoshun/todomaster/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the startup load (or a reload) finishes.
type MsgTasksLoaded struct {
	Output *usecase.LoadTasksOutput
}

func (MsgTasksLoaded) sealed() {}

// MsgMutationSettled is sent when the service answers a pending mutation.
type MsgMutationSettled struct {
	Response todolist.Response
	Pending  todolist.Pending
}

func (MsgMutationSettled) sealed() {}

// MsgError is sent when an error occurs outside the notice flow.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
