package schema

import (
	"encoding/json"
	"fmt"
)

// The remote collections routinely contain records with fields missing or
// carrying values of the wrong type. Decoding is tolerant per element: a
// record that cannot produce every required field is dropped, the rest of
// the payload is kept. Only a payload that is not a JSON array at all is an
// error.

type rawTask struct {
	ID        *int    `json:"id"`
	UserID    *int    `json:"userId"`
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

type rawUser struct {
	ID       *int    `json:"id"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Company  *struct {
		Name *string `json:"name"`
	} `json:"company"`
}

// ParseTasks decodes the tasks payload, dropping malformed records.
func ParseTasks(data []byte) ([]*Task, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("failed to decode tasks payload: %w", err)
	}

	tasks := make([]*Task, 0, len(elems))
	for _, elem := range elems {
		var raw rawTask
		if err := json.Unmarshal(elem, &raw); err != nil {
			continue
		}
		if raw.ID == nil || raw.UserID == nil || raw.Title == nil || raw.Completed == nil {
			continue
		}
		tasks = append(tasks, &Task{
			ID:        *raw.ID,
			UserID:    *raw.UserID,
			Title:     *raw.Title,
			Completed: *raw.Completed,
		})
	}

	return tasks, nil
}

// ParseUsers decodes the users payload, dropping malformed records.
func ParseUsers(data []byte) ([]*User, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("failed to decode users payload: %w", err)
	}

	users := make([]*User, 0, len(elems))
	for _, elem := range elems {
		var raw rawUser
		if err := json.Unmarshal(elem, &raw); err != nil {
			continue
		}
		if raw.ID == nil || raw.Name == nil || raw.Email == nil || raw.Username == nil {
			continue
		}
		if raw.Company == nil || raw.Company.Name == nil {
			continue
		}
		users = append(users, &User{
			ID:          *raw.ID,
			Name:        *raw.Name,
			Email:       *raw.Email,
			Username:    *raw.Username,
			CompanyName: *raw.Company.Name,
		})
	}

	return users, nil
}
