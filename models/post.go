package models

import "time"

// Post is a blog entry. Author is free text and not a reference to a User.
type Post struct {
	PostID  int64  `json:"id" yaml:"-"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	Author  string `json:"author" yaml:"author"`

	// Date defaults to the creation time when left zero.
	Date time.Time `json:"date" yaml:"date"`

	// Comments are ordered by Date ascending. Never nil once loaded.
	Comments []Comment `json:"comments" yaml:"comments"`
}

// Comment is a reader's reply attached to a Post.
type Comment struct {
	CommentID int64     `json:"id" yaml:"-"`
	PostID    int64     `json:"post_id" yaml:"-"`
	Body      string    `json:"body" yaml:"body"`
	Author    string    `json:"author" yaml:"author"`
	Date      time.Time `json:"date" yaml:"date"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
