package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"sewsmart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngMagic is enough of a PNG header for content-type sniffing.
var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

func newMultipartRequest(t *testing.T, fileName string, fileContents []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if fileName != "" {
		part, err := writer.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContents)
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestCreatePostHandler(t *testing.T) {
	s, store := newTestServer(t)
	app := newAuthedApp("user_1")
	app.Post("/api/posts", s.CreatePost)

	t.Run("uploads image and creates post", func(t *testing.T) {
		body, contentType := newMultipartRequest(t, "dress.png", pngMagic, map[string]string{
			"description": "Linen wrap dress",
			"category":    "dresses",
			"tags":        "linen, summer",
		})
		req := httptest.NewRequest("POST", "/api/posts", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var post models.Post
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&post))
		assert.Equal(t, "user_1", post.UserID)
		assert.Equal(t, "Linen wrap dress", post.Description)
		assert.Equal(t, models.TagList{"linen", "summer"}, post.Tags)
		assert.Contains(t, post.Image, "uploads/")
		assert.NotNil(t, post.Likes)
		require.Len(t, store.uploaded, 1)
		assert.True(t, strings.HasSuffix(store.uploaded[0], ".png"))
	})

	t.Run("400 without image part", func(t *testing.T) {
		body, contentType := newMultipartRequest(t, "", nil, map[string]string{
			"description": "no image attached",
		})
		req := httptest.NewRequest("POST", "/api/posts", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		var errResp models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		assert.Equal(t, "Image is required", errResp.Error)
	})

	t.Run("400 for disallowed extension", func(t *testing.T) {
		body, contentType := newMultipartRequest(t, "pattern.pdf", []byte("%PDF-1.7"), nil)
		req := httptest.NewRequest("POST", "/api/posts", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestDeletePostHandler(t *testing.T) {
	s, store := newTestServer(t)

	post := &models.Post{
		UserID: "owner_1",
		Image:  "https://nyc3.digitaloceanspaces.com/sew-smart/uploads/abc.png",
	}
	require.NoError(t, s.postRepo.Create(context.Background(), post))

	t.Run("owner can delete", func(t *testing.T) {
		app := newAuthedApp("owner_1")
		app.Delete("/api/posts/:id", s.DeletePost)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/posts/1", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, []string{post.Image}, store.deleted)
	})

	t.Run("404 after deletion", func(t *testing.T) {
		app := newAuthedApp("owner_1")
		app.Delete("/api/posts/:id", s.DeletePost)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/posts/1", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		other := &models.Post{UserID: "owner_1", Image: "https://cdn/x.png"}
		require.NoError(t, s.postRepo.Create(context.Background(), other))

		app := newAuthedApp("intruder")
		app.Delete("/api/posts/:id", s.DeletePost)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/posts/2", nil))
		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("400 for non-numeric id", func(t *testing.T) {
		app := newAuthedApp("owner_1")
		app.Delete("/api/posts/:id", s.DeletePost)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/posts/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestToggleLikeHandler(t *testing.T) {
	s, _ := newTestServer(t)
	app := newAuthedApp("fan_1")
	app.Post("/api/posts/:id/like", s.ToggleLike)

	post := &models.Post{UserID: "owner_1", Image: "https://cdn/p.png"}
	require.NoError(t, s.postRepo.Create(context.Background(), post))

	t.Run("first call likes", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/posts/1/like", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var got models.Post
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, []string{"fan_1"}, got.Likes)
	})

	t.Run("second call unlikes", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/posts/1/like", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var got models.Post
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Empty(t, got.Likes)
	})

	t.Run("404 for missing post", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/posts/99/like", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestGetPostsHandler(t *testing.T) {
	s, _ := newTestServer(t)
	app := newAuthedApp("viewer")
	app.Get("/api/posts", s.GetPosts)
	app.Get("/api/users/:id/posts", s.GetUserPosts)

	require.NoError(t, s.postRepo.Create(context.Background(),
		&models.Post{UserID: "maker_1", Image: "https://cdn/1.png"}))
	require.NoError(t, s.postRepo.Create(context.Background(),
		&models.Post{UserID: "maker_2", Image: "https://cdn/2.png"}))

	t.Run("feed returns newest first", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/posts", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var posts []models.Post
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
		require.Len(t, posts, 2)
		assert.Equal(t, "maker_2", posts[0].UserID)
	})

	t.Run("author filter", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/users/maker_1/posts", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var posts []models.Post
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
		require.Len(t, posts, 1)
		assert.Equal(t, "maker_1", posts[0].UserID)
	})
}

func TestCommentHandlers(t *testing.T) {
	s, _ := newTestServer(t)

	post := &models.Post{UserID: "owner_1", Image: "https://cdn/p.png"}
	require.NoError(t, s.postRepo.Create(context.Background(), post))

	author := newAuthedApp("commenter_1")
	author.Post("/api/posts/:id/comments", s.AddComment)
	author.Delete("/api/posts/:id/comments/:commentId", s.DeleteComment)

	t.Run("adds comment", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/posts/1/comments",
			jsonBody(t, map[string]string{"content": "Love the stitching"}))
		req.Header.Set("Content-Type", "application/json")

		resp, err := author.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var got models.Post
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		require.Len(t, got.Comments, 1)
		assert.Equal(t, "Love the stitching", got.Comments[0].Content)
		assert.Equal(t, "commenter_1", got.Comments[0].UserID)
	})

	t.Run("rejects blank content", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/posts/1/comments",
			jsonBody(t, map[string]string{"content": "   "}))
		req.Header.Set("Content-Type", "application/json")

		resp, err := author.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("only the author can delete", func(t *testing.T) {
		other := newAuthedApp("someone_else")
		other.Delete("/api/posts/:id/comments/:commentId", s.DeleteComment)

		resp, err := other.Test(httptest.NewRequest("DELETE", "/api/posts/1/comments/1", nil))
		require.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)

		resp, err = author.Test(httptest.NewRequest("DELETE", "/api/posts/1/comments/1", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var got models.Post
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Empty(t, got.Comments)
	})

	t.Run("404 for comment on another post", func(t *testing.T) {
		resp, err := author.Test(httptest.NewRequest("DELETE", "/api/posts/42/comments/1", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}
