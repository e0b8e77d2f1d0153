package ideaapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/ideaboard/domain"
	"github.com/CrestNiraj12/ideaboard/infra/ideaapi/ideaapitest"
)

func newTestServices(t *testing.T) (*ideaapitest.Server, *ideaService, *commentService) {
	t.Helper()
	srv := ideaapitest.New()
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, 5*time.Second, zap.NewNop())
	return srv, NewIdeaService(client), NewCommentService(client)
}

func TestIdeaService_List_QueryShape(t *testing.T) {
	srv, ideas, _ := newTestServices(t)

	for _, period := range domain.Periods {
		for _, sort := range domain.SortKeys {
			t.Run(fmt.Sprintf("%s/%s", period, sort), func(t *testing.T) {
				srv.ResetRequests()
				_, err := ideas.List(context.Background(), domain.ListQuery{Period: period, Sort: sort})
				require.NoError(t, err)

				reqs := srv.Requests()
				require.Len(t, reqs, 1)
				assert.Equal(t, http.MethodGet, reqs[0].Method)
				assert.Equal(t, "/api/ideas", reqs[0].Path)
				assert.Equal(t, string(sort), reqs[0].Query.Get("sort"))
				if period == domain.PeriodAll {
					assert.False(t, reqs[0].Query.Has("period"), "period must be omitted for all")
				} else {
					assert.Equal(t, string(period), reqs[0].Query.Get("period"))
				}
				assert.NotEmpty(t, reqs[0].Header.Get("X-Request-ID"))
			})
		}
	}
}

func TestIdeaService_List_KeepsServerOrderAndMapsFields(t *testing.T) {
	srv, ideas, _ := newTestServices(t)
	created := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	srv.AddIdea(ideaapitest.Idea{Title: "low", Description: "d", Votes: 1, CreatedAt: created})
	srv.AddIdea(ideaapitest.Idea{
		Title:       "high",
		Description: "d",
		Author:      "ada",
		Link:        "https://example.com",
		Tags:        []string{"AI"},
		Votes:       9,
		Comments:    2,
		CreatedAt:   created,
	})

	got, err := ideas.List(context.Background(), domain.DefaultListQuery())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "high", got[0].Title)
	assert.Equal(t, "low", got[1].Title)
	assert.Equal(t, domain.NumericID(2), got[0].ID)
	assert.Equal(t, "ada", got[0].Author)
	assert.Equal(t, "https://example.com", got[0].Link)
	assert.Equal(t, []string{"AI"}, got[0].Tags)
	assert.Equal(t, 9, got[0].Votes)
	assert.Equal(t, 2, got[0].Comments)
	assert.True(t, got[0].CreatedAt.Equal(created))
}

func TestIdeaService_List_MissingOptionalFields(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"abc","title":"t","description":"d","author":null,"tags":null,"votes":null}]`))
	})
	srv := httptest.NewServer(h)
	defer srv.Close()

	got, err := NewIdeaService(NewClient(srv.URL, 0, nil)).List(context.Background(), domain.DefaultListQuery())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.NewID("abc"), got[0].ID)
	assert.Empty(t, got[0].Author)
	assert.Empty(t, got[0].Tags)
	assert.Zero(t, got[0].Votes)
	assert.Zero(t, got[0].Comments)
	assert.True(t, got[0].CreatedAt.IsZero())
}

func TestIdeaService_List_OddFieldShapesDoNotFailTheList(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":1,"title":"epoch","description":"d","votes":"7","comments":2.0,"created_at":1700000000000},
			{"id":2,"title":"junk","description":"d","votes":{"n":1},"comments":"many","created_at":true}
		]`))
	})
	srv := httptest.NewServer(h)
	defer srv.Close()

	got, err := NewIdeaService(NewClient(srv.URL, 0, nil)).List(context.Background(), domain.DefaultListQuery())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 7, got[0].Votes)
	assert.Equal(t, 2, got[0].Comments)
	assert.True(t, got[0].CreatedAt.Equal(time.UnixMilli(1700000000000)))
	assert.Zero(t, got[1].Votes)
	assert.Zero(t, got[1].Comments)
	assert.True(t, got[1].CreatedAt.IsZero())
}

func TestIdeaService_List_UndecodableBodyFails(t *testing.T) {
	srv, ideas, _ := newTestServices(t)
	srv.FailList(true)

	_, err := ideas.List(context.Background(), domain.DefaultListQuery())
	assert.Error(t, err)
}

func TestIdeaService_List_NetworkErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewIdeaService(NewClient(url, time.Second, nil)).List(context.Background(), domain.DefaultListQuery())
	assert.Error(t, err)
}

func TestIdeaService_Create_PayloadShape(t *testing.T) {
	srv, ideas, _ := newTestServices(t)

	err := ideas.Create(context.Background(), domain.NewIdea{Title: "t", Description: "d"})
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/api/ideas", reqs[0].Path)
	assert.Equal(t, "application/json", reqs[0].Header.Get("Content-Type"))
	assert.Equal(t, map[string]any{
		"title":       "t",
		"description": "d",
		"tags":        []any{},
	}, reqs[0].Body, "blank optional fields must be omitted and tags always sent")

	srv.ResetRequests()
	err = ideas.Create(context.Background(), domain.NewIdea{
		Title:       "t",
		Description: "d",
		Author:      "ada",
		Link:        "https://x.test",
		Tags:        []string{"AI", "Productivity"},
	})
	require.NoError(t, err)
	body := srv.Requests()[0].Body
	assert.Equal(t, "ada", body["author"])
	assert.Equal(t, "https://x.test", body["link"])
	assert.Equal(t, []any{"AI", "Productivity"}, body["tags"])
}

func TestIdeaService_Upvote_SendsIdeaID(t *testing.T) {
	srv, ideas, _ := newTestServices(t)
	id := srv.AddIdea(ideaapitest.Idea{Title: "t", Description: "d"})

	require.NoError(t, ideas.Upvote(context.Background(), domain.NumericID(int64(id))))

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/api/votes", reqs[0].Path)
	assert.Equal(t, map[string]any{"idea_id": float64(id)}, reqs[0].Body)
	stored, _ := srv.Idea(id)
	assert.Equal(t, 1, stored.Votes)
}

func TestWrites_IgnoreStatusCodes(t *testing.T) {
	_, ideas, _ := newTestServices(t)

	// Unknown idea: the fake answers 404, which writes do not inspect.
	assert.NoError(t, ideas.Upvote(context.Background(), domain.NumericID(999)))
}

func TestWrites_TransportFailureIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := NewIdeaService(NewClient(url, time.Second, nil)).Upvote(context.Background(), domain.NumericID(1))
	assert.Error(t, err)
}
