package restapi

import (
	"context"
	"net/http"

	"github.com/Tahsina2226/course-event-management/core/event"
	"github.com/Tahsina2226/course-event-management/core/news"
)

var (
	_ event.Repository = (*Client)(nil)
	_ news.Repository  = (*Client)(nil)
)

func (c *Client) ListEvents(ctx context.Context) ([]event.Event, error) {
	var events []event.Event
	if err := c.do(ctx, http.MethodGet, "events", nil, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) ListNews(ctx context.Context) ([]news.News, error) {
	var items []news.News
	if err := c.do(ctx, http.MethodGet, "news", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
