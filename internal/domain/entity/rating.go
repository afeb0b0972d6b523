package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating is one user's evaluation of one restaurant. Ratings are immutable
// once created; the system never edits or deletes an existing entry.
type Rating struct {
	ID           uuid.UUID // The unique ID of this rating entry.
	Score        float64   // Numeric score. Range is enforced at the delivery boundary, not here.
	Comment      string    // Optional free-text comment.
	AuthorID     uuid.UUID // References the User who submitted the rating.
	RestaurantID uuid.UUID // References the rated Restaurant.
	Author       *User     // Optional preloaded author, used when listing ratings.
	CreatedAt    time.Time // Timestamp of submission.
}

// RatingView is the listing shape for a rating. It exposes only the author's
// display name, never identity or credential fields.
type RatingView struct {
	ID         uuid.UUID `json:"id"`
	Score      float64   `json:"score"`
	Comment    string    `json:"comment"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// View converts the rating into its listing shape. The author must have been
// preloaded; a missing author yields an empty name rather than a panic.
func (r *Rating) View() *RatingView {
	view := &RatingView{
		ID:        r.ID,
		Score:     r.Score,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
	if r.Author != nil {
		view.AuthorName = r.Author.Name
	}

	return view
}
