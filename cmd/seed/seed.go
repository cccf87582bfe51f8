package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/models"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Posts []models.Post `yaml:"posts"`
}

// loadPosts reads a YAML document of the form
//
//	posts:
//	  - title: Hello
//	    author: admin
//	    content: "**markdown**"
//	    comments:
//	      - author: bob
//	        body: first!
func loadPosts(path string) ([]models.Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error decoding seed file: %w", err)
	}
	return file.Posts, nil
}

// seedPosts creates every post and then its comments in file order.
// Comment dates are assigned at seeding time. It returns the number of posts
// created before the first failure.
func seedPosts(ctx context.Context, posts service.PostService, seed []models.Post) (int, error) {
	created := 0
	for _, post := range seed {
		comments := post.Comments

		stored, err := posts.CreatePost(ctx, post)
		if err != nil {
			return created, fmt.Errorf("error creating post %q: %w", post.Title, err)
		}
		created++

		for _, comment := range comments {
			comment.PostID = stored.PostID
			if _, err := posts.AddComment(ctx, comment); err != nil {
				return created, fmt.Errorf("error adding comment to post %d: %w", stored.PostID, err)
			}
		}
	}
	return created, nil
}
