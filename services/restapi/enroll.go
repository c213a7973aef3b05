package restapi

import (
	"context"
	"net/http"

	"github.com/Tahsina2226/course-event-management/core/enroll"
)

var _ enroll.API = (*Client)(nil)

func (c *Client) Enroll(ctx context.Context, email string, batchID int) (string, error) {
	body := map[string]interface{}{"userEmail": email, "batchId": batchID}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "enrollments", nil, body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
