package restapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Tahsina2226/course-event-management/core/batch"
)

var _ batch.Repository = (*Client)(nil)

func (c *Client) ListBatches(ctx context.Context) ([]batch.Batch, error) {
	var batches []batch.Batch
	if err := c.do(ctx, http.MethodGet, "batches", nil, nil, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

func (c *Client) CreateBatch(ctx context.Context, nb batch.NewBatch) (batch.Batch, error) {
	var b batch.Batch
	if err := c.do(ctx, http.MethodPost, "batches", nil, nb, &b); err != nil {
		return batch.Batch{}, err
	}
	return b, nil
}

func (c *Client) UpdateBatch(ctx context.Context, id int, ub batch.UpdateBatch) (batch.Batch, error) {
	var b batch.Batch
	if err := c.do(ctx, http.MethodPut, "batches/"+strconv.Itoa(id), nil, ub, &b); err != nil {
		return batch.Batch{}, err
	}
	return b, nil
}

func (c *Client) DeleteBatch(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "batches/"+strconv.Itoa(id), nil, nil, nil)
}
