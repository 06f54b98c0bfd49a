package models

import "fmt"

// DefaultUserID is the author id attached to every post created here.
const DefaultUserID = 1

type Post struct {
	ID     int    `json:"id,omitempty"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

func (p Post) String() string {
	return fmt.Sprintf("{id:%d userId:%d title:%q body:%q}", p.ID, p.UserID, p.Title, p.Body)
}
