package ddg

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_News(t *testing.T) {
	srv := newVerticalServer(t, "/news.js", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "elections", q.Get("q"))
		require.Equal(t, "1", q.Get("noamp"))
		require.Equal(t, "-1", q.Get("p"), "moderate maps to -1 on the news vertical")
		require.Equal(t, "d", q.Get("df"))

		fmt.Fprint(w, `{"results":[
			{"date":1700000000,"excerpt":"Something happened","source":"Example Times","title":"Breaking","url":"https://news.example/1"},
			{"date":0,"excerpt":"","source":"","title":"Untitled wire item","url":"https://news.example/2"}
		]}`)
	})

	client := NewClient(WithAPIBase(srv.URL))

	results, err := client.News(context.Background(), NewsRequest{
		Keywords:   "elections",
		Region:     "wt-wt",
		SafeSearch: SafeSearchModerate,
		TimeLimit:  TimeLimitDay,
		MaxResults: 10,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "Breaking", results[0].Title)
	require.Equal(t, "Something happened", results[0].Body, "excerpt maps to body")
	require.Equal(t, "2023-11-14T22:13:20Z", results[0].Date, "epoch seconds map to RFC 3339")
	require.Empty(t, results[1].Date, "zero date stays empty for placeholder substitution")
}
