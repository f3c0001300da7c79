package remote

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/runoshun/todomaster/internal/domain"
)

// createdAtLayouts are the string timestamp forms accepted from the service,
// tried in order. Layouts without a zone are read as UTC.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// wireTask is a task record as the service sends it.
type wireTask struct {
	ID        domain.TaskID   `json:"id"`
	Text      string          `json:"text"`
	CreatedAt json.RawMessage `json:"createdAt"`
	Completed bool            `json:"completed"`
}

func (w wireTask) toDomain() domain.Task {
	return domain.Task{
		ID:        w.ID,
		Text:      w.Text,
		Completed: w.Completed,
		CreatedAt: parseCreatedAt(w.CreatedAt),
	}
}

// parseCreatedAt reads a string timestamp or a number of epoch milliseconds.
// Anything else, including null, an absent field or an unknown layout, is
// the zero time: the record itself is still valid.
func parseCreatedAt(raw json.RawMessage) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return time.Time{}
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return time.Time{}
		}
		s = strings.TrimSpace(s)
		for _, layout := range createdAtLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
		return time.Time{}
	}

	var ms float64
	if err := json.Unmarshal(raw, &ms); err != nil {
		return time.Time{}
	}
	return time.UnixMilli(int64(ms)).UTC()
}

func decodeTask(body []byte) (domain.Task, error) {
	var w wireTask
	if err := json.Unmarshal(body, &w); err != nil {
		return domain.Task{}, err
	}
	return w.toDomain(), nil
}

func decodeTasks(body []byte) ([]domain.Task, error) {
	var ws []wireTask
	if err := json.Unmarshal(body, &ws); err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(ws))
	for _, w := range ws {
		tasks = append(tasks, w.toDomain())
	}
	return tasks, nil
}
