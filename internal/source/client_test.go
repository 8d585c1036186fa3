package source_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kpeters/castdeck/internal/domain"
	"github.com/kpeters/castdeck/internal/source"
)

const catalogJSON = `[
	{"id":"10716","title":"Something Was Wrong","description":"Docuseries.",
	 "seasons":14,"image":"https://img.example/10716.jpg","genres":[1,2],
	 "updated":"2022-11-03T07:00:00.000Z"},
	{"id":"5675","title":"This Is Actually Happening","description":"Stories.",
	 "seasons":12,"image":"https://img.example/5675.jpg","genres":[2],
	 "updated":"not-a-date"}
]`

const detailJSON = `{
	"id":"10716","title":"Something Was Wrong",
	"description":"Docuseries.","image":"https://img.example/10716.jpg",
	"genres":["Personal Growth","Investigative Journalism"],
	"updated":"2022-11-03T07:00:00.000Z",
	"seasons":[
		{"season":1,"title":"Season 1","image":"https://img.example/s1.jpg",
		 "episodes":[
			{"episode":1,"title":"Pilot","description":"First.","file":"https://audio.example/1.mp3"},
			{"episode":2,"title":"Two","description":"Second.","file":"https://audio.example/2.mp3"}
		 ]}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*source.Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	return source.NewClient(srv.URL, 5*time.Second, nil), srv.Close
}

func TestFetchCatalog(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shows" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(catalogJSON))
	})
	defer done()

	shows, err := client.FetchCatalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shows) != 2 {
		t.Fatalf("expected 2 shows, got %d", len(shows))
	}
	if shows[0].ID != "10716" || shows[0].Title != "Something Was Wrong" {
		t.Errorf("shows[0] mapped incorrectly: %+v", shows[0])
	}
	if !shows[0].HasGenre(2) {
		t.Error("shows[0] should carry genre 2")
	}
	want := time.Date(2022, 11, 3, 7, 0, 0, 0, time.UTC)
	if !shows[0].Updated.Equal(want) {
		t.Errorf("shows[0].Updated: expected %v, got %v", want, shows[0].Updated)
	}
	if !shows[1].Updated.IsZero() {
		t.Errorf("unparseable date should map to zero time, got %v", shows[1].Updated)
	}
}

func TestFetchShowDetail(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/id/10716" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(detailJSON))
	})
	defer done()

	detail, err := client.FetchShowDetail(context.Background(), "10716")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Seasons) != 1 {
		t.Fatalf("expected 1 season, got %d", len(detail.Seasons))
	}
	season := detail.Seasons[0]
	if season.Number != 1 || len(season.Episodes) != 2 {
		t.Errorf("season mapped incorrectly: %+v", season)
	}
	if season.Episodes[1].Title != "Two" || season.Episodes[1].Number != 2 {
		t.Errorf("episode mapped incorrectly: %+v", season.Episodes[1])
	}
	if len(detail.GenreTitles) != 2 {
		t.Errorf("expected 2 genre titles, got %v", detail.GenreTitles)
	}
}

func TestFetchShowDetailUnknownID(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	defer done()

	_, err := client.FetchShowDetail(context.Background(), "0")
	if !errors.Is(err, domain.ErrShowNotFound) {
		t.Errorf("expected ErrShowNotFound, got %v", err)
	}
}

func TestFetchCatalogServerError(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer done()

	_, err := client.FetchCatalog(context.Background())
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}

func TestFetchCatalogOffline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	client := source.NewClient(srv.URL, time.Second, nil)

	_, err := client.FetchCatalog(context.Background())
	if !errors.Is(err, domain.ErrSourceOffline) {
		t.Errorf("expected ErrSourceOffline, got %v", err)
	}
}
