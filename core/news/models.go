package news

import "github.com/volatiletech/null/v8"

// News is one campus news item. Most fields beyond the headline are
// optional and may be absent in the feed.
type News struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    null.String `json:"category,omitempty"`
	Date        null.String `json:"date,omitempty"`
	ImageURL    null.String `json:"imageUrl,omitempty"`
	ReadTime    null.String `json:"readTime,omitempty"`
	Views       null.Int    `json:"views,omitempty"`
	Likes       null.Int    `json:"likes,omitempty"`
}
