package restapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Tahsina2226/course-event-management/core/routine"
)

var _ routine.Repository = (*Client)(nil)

func (c *Client) ListRoutines(ctx context.Context, department string) ([]routine.Routine, error) {
	var query url.Values
	if department != "" {
		query = url.Values{"department": []string{department}}
	}
	var routines []routine.Routine
	if err := c.do(ctx, http.MethodGet, "routines", query, nil, &routines); err != nil {
		return nil, err
	}
	return routines, nil
}

func (c *Client) CreateRoutine(ctx context.Context, nr routine.NewRoutine) (routine.Routine, error) {
	var r routine.Routine
	if err := c.do(ctx, http.MethodPost, "routines", nil, nr, &r); err != nil {
		return routine.Routine{}, err
	}
	return r, nil
}

func (c *Client) UpdateRoutine(ctx context.Context, id int, ur routine.UpdateRoutine) (routine.Routine, error) {
	var r routine.Routine
	if err := c.do(ctx, http.MethodPut, "routines/"+strconv.Itoa(id), nil, ur, &r); err != nil {
		return routine.Routine{}, err
	}
	return r, nil
}

func (c *Client) DeleteRoutine(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "routines/"+strconv.Itoa(id), nil, nil, nil)
}
