package ddg

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// newVerticalServer serves the vqd landing page at / and delegates the
// vertical path to fn.
func newVerticalServer(t *testing.T, path string, fn http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `vqd="4-987654321"`)
	})
	mux.HandleFunc(path, fn)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Images(t *testing.T) {
	srv := newVerticalServer(t, "/i.js", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "kittens", q.Get("q"))
		require.Equal(t, "4-987654321", q.Get("vqd"))
		require.Equal(t, "wt-wt", q.Get("l"))
		require.Equal(t, "json", q.Get("o"))
		require.Equal(t, "1", q.Get("p"))
		require.Equal(t, "time:w,size:Small,,,,", q.Get("f"))

		fmt.Fprint(w, `{"results":[
			{"title":"Kitten A","image":"https://img.example/a.jpg","url":"https://example.com/a","height":600,"width":800,"source":"Bing"},
			{"title":"Kitten B","image":"https://img.example/b.jpg","url":"https://example.com/b","height":300,"width":400,"source":"Bing"},
			{"title":"Kitten C","image":"https://img.example/c.jpg","url":"https://example.com/c","height":100,"width":200,"source":"Bing"}
		]}`)
	})

	client := NewClient(WithAPIBase(srv.URL))

	results, err := client.Images(context.Background(), ImageRequest{
		Keywords:   "kittens",
		Region:     "wt-wt",
		SafeSearch: SafeSearchModerate,
		TimeLimit:  TimeLimitWeek,
		Size:       "Small",
		MaxResults: 2,
	})
	require.NoError(t, err)
	require.Len(t, results, 2, "max_results caps the returned slice")
	require.Equal(t, "Kitten A", results[0].Title)
	require.Equal(t, 800, results[0].Width)
	require.Equal(t, 600, results[0].Height)
}

func TestClient_Images_SafeSearchOff(t *testing.T) {
	srv := newVerticalServer(t, "/i.js", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "-1", r.URL.Query().Get("p"))
		fmt.Fprint(w, `{"results":[]}`)
	})

	client := NewClient(WithAPIBase(srv.URL))

	results, err := client.Images(context.Background(), ImageRequest{
		Keywords:   "kittens",
		SafeSearch: SafeSearchOff,
	})
	require.NoError(t, err)
	require.Empty(t, results)
}
