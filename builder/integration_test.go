package builder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/wisdomatom/gqlbuilder-gen/builder"
	"github.com/wisdomatom/gqlbuilder-gen/internal/demoserver"
)

func newDemoClient(t *testing.T, opts ...builder.ClientOption) (*builder.Client, string) {
	t.Helper()
	srv := httptest.NewServer(demoserver.New(nil).Handler())
	t.Cleanup(srv.Close)
	return builder.NewHTTPClient(srv.URL+"/graphql", srv.Client(), opts...), srv.URL
}

func TestDemoServerPost(t *testing.T) {
	client, _ := newDemoClient(t, builder.WithDefaultOptions(builder.FetchOptions{Method: http.MethodPost}))

	q := Query.AddPost(2, Post.
		AddId().
		AddTitle().
		AddWriter(User.AddId().AddUsername().AddCreatedAt()).
		AddComments(Comment.AddId().AddScores()).
		AddScores())
	resp, err := q.Fetch(context.Background(), client)
	require.NoError(t, err)
	require.NoError(t, resp.Err())

	post := resp.Data.Post
	require.NotNil(t, post)
	assert.Equal(t, 2, *post.Id)
	assert.Equal(t, "sorrydionysos", *post.Title)
	assert.Equal(t, []int{1, 2, 3}, post.Scores)
	require.NotNil(t, post.Writer)
	assert.Equal(t, 3, *post.Writer.Id)
	require.NotNil(t, post.Writer.CreatedAt)
	assert.True(t, demoserver.CreatedAt.Equal(*post.Writer.CreatedAt))
	require.Len(t, post.Comments, 2)
	assert.Equal(t, 1, *post.Comments[1].Id)
	assert.Equal(t, []int{2, 3, 4}, post.Comments[0].Scores)
}

func TestDemoServerGet(t *testing.T) {
	client, _ := newDemoClient(t)

	resp, err := Query.AddUser(1, User.AddId().AddUsername()).Fetch(context.Background(), client)
	require.NoError(t, err)
	require.NotNil(t, resp.Data.User)
	assert.Equal(t, 1, *resp.Data.User.Id)
	assert.Equal(t, "namse", *resp.Data.User.Username)
	assert.Nil(t, resp.Data.User.CreatedAt)
}

func TestDemoServerFailure(t *testing.T) {
	client, base := newDemoClient(t)

	_, err := Query.AddId().Fetch(context.Background(), client, builder.WithURL(base+"/fail"))
	var reqErr *builder.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Contains(t, reqErr.Body, "internal failure")
}

func TestDemoServerConcurrentFetch(t *testing.T) {
	client, _ := newDemoClient(t, builder.WithDefaultOptions(builder.FetchOptions{Method: http.MethodPost}))

	g, ctx := errgroup.WithContext(context.Background())
	ids := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got := make([]int, len(ids))
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			resp, err := Query.AddUser(id, User.AddId()).Fetch(ctx, client)
			if err != nil {
				return err
			}
			got[i] = *resp.Data.User.Id
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, ids, got)
}
