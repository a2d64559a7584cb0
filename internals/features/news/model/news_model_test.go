// file: internals/features/news/model/news_model_test.go
package model

import "testing"

func TestToggleLike(t *testing.T) {
	article := News{NewsLikedBy: []string{"ip:10.0.0.1"}}

	if !article.ToggleLike("staff:abc") {
		t.Fatal("first toggle should like")
	}
	if !article.HasLiked("staff:abc") {
		t.Fatal("HasLiked = false after like")
	}
	if len(article.NewsLikedBy) != 2 {
		t.Fatalf("like count = %d, want 2", len(article.NewsLikedBy))
	}

	if article.ToggleLike("staff:abc") {
		t.Fatal("second toggle should unlike")
	}
	if article.HasLiked("staff:abc") {
		t.Fatal("HasLiked = true after unlike")
	}
	if len(article.NewsLikedBy) != 1 {
		t.Fatalf("like count = %d, want 1", len(article.NewsLikedBy))
	}

	// The earlier like is untouched.
	if !article.HasLiked("ip:10.0.0.1") {
		t.Fatal("unrelated like was removed")
	}
}
