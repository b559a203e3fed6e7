package router_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/sbilibin2017/gw-movie-watchlist/internal/db"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/facades"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/jwt"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/middlewares"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/models"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/repositories"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/router"
	"github.com/sbilibin2017/gw-movie-watchlist/internal/services"
)

const adminEmail = "root@example.com"

func newTMDBStub(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/movie", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tmdb-token", r.Header.Get("Authorization"))
		if r.URL.Query().Get("query") != "Inception" {
			fmt.Fprint(w, `{"results":[]}`)
			return
		}
		fmt.Fprint(w, `{"results":[
			{"id":27205,"title":"Inception","release_date":"2010-07-15","poster_path":"/inception.jpg"},
			{"id":64956,"title":"Inception: The Cobol Job","release_date":"2010-12-07"}
		]}`)
	})
	mux.HandleFunc("/movie/27205", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"title":"Inception","overview":"A thief who steals corporate secrets.","release_date":"2010-07-15","poster_path":"/inception.jpg"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func streamingHandler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/title", r.URL.Path)
		assert.Equal(t, "streaming-key", r.Header.Get("X-RapidAPI-Key"))
		fmt.Fprint(w, `{"result":[{"streamingInfo":{"us":[
			{"service":"netflix","link":"https://www.netflix.com/title/70131314"},
			{"service":"Netflix","link":"https://www.netflix.com/title/duplicate"},
			{"service":"hulu","link":"https://www.hulu.com/movie/inception"}
		]}}]}`)
	}
}

// gatedStreamingHandler holds every call until n calls are in flight.
func gatedStreamingHandler(t *testing.T, n int) http.HandlerFunc {
	var mu sync.Mutex
	arrived := 0
	release := make(chan struct{})
	next := streamingHandler(t)

	return func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		arrived++
		if arrived == n {
			close(release)
		}
		mu.Unlock()

		select {
		case <-release:
		case <-time.After(3 * time.Second):
			t.Error("streaming calls did not overlap")
		}
		next(w, r)
	}
}

func newApp(t *testing.T) *httptest.Server {
	return newAppWithStreaming(t, streamingHandler(t))
}

func newAppWithStreaming(t *testing.T, streamingAPI http.HandlerFunc) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	conn, dialect, err := db.Open(ctx, "sqlite:///"+filepath.Join(t.TempDir(), "e2e.db"), 4, 2)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx, conn, dialect))
	t.Cleanup(func() { conn.Close() })

	tmdb := newTMDBStub(t)
	streaming := httptest.NewServer(streamingAPI)
	t.Cleanup(streaming.Close)
	client := &http.Client{Timeout: 5 * time.Second}

	userReader := repositories.NewUserReadRepository(conn, middlewares.GetTxFromContext)
	userWriter := repositories.NewUserWriteRepository(conn, middlewares.GetTxFromContext)
	movieReader := repositories.NewMovieReadRepository(conn, middlewares.GetTxFromContext)
	movieWriter := repositories.NewMovieWriteRepository(conn, middlewares.GetTxFromContext)
	sessionStore := repositories.NewSessionMemoryRepository(time.Hour)

	tokens := jwt.New(jwt.WithSecretKey("test-secret"), jwt.WithExpiration(time.Hour))

	auth := services.NewAuthService(userReader, userWriter)
	sessions := services.NewSessionService(sessionStore, userReader, tokens)
	watchlist := services.NewWatchlistService(
		facades.NewTMDBFacade(client, tmdb.URL, "https://image.tmdb.org/t/p/w500", "tmdb-token"),
		facades.NewStreamingFacade(client, streaming.URL, "streaming-key", "US"),
		movieReader,
		movieWriter,
		sessionStore,
		nil,
	)

	handler := router.New(conn, tokens, auth, sessions, watchlist,
		middlewares.NewClientLimiter(rate.Inf, 1), []string{adminEmail}, "/swagger/doc.json")

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

type browser struct {
	t      *testing.T
	base   string
	client *http.Client
}

func newBrowser(t *testing.T, base string) *browser {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &browser{
		t:    t,
		base: base,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (b *browser) get(path string) *http.Response {
	resp, err := b.client.Get(b.base + path)
	require.NoError(b.t, err)
	b.t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (b *browser) post(path string, form url.Values) *http.Response {
	resp, err := b.client.PostForm(b.base+path, form)
	require.NoError(b.t, err)
	b.t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func view[T any](t *testing.T, resp *http.Response) (string, string, T) {
	t.Helper()
	var body struct {
		View  string `json:"view"`
		Flash string `json:"flash"`
		Data  T      `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.View, body.Flash, body.Data
}

type homeData struct {
	Name   string                  `json:"name"`
	Movies []models.WatchlistEntry `json:"movies"`
}

func register(b *browser, email string) {
	resp := b.post("/register", url.Values{"email": {email}, "password": {"pw123"}, "name": {"Ann"}})
	require.Equal(b.t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(b.t, "/home", resp.Header.Get("Location"))
}

func saveInception(b *browser) {
	resp := b.post("/add", url.Values{"title": {"Inception"}})
	require.Equal(b.t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(b.t, "/select", resp.Header.Get("Location"))

	resp = b.get("/select")
	require.Equal(b.t, http.StatusOK, resp.StatusCode)
	_, _, batch := view[[]models.Candidate](b.t, resp)
	require.NotEmpty(b.t, batch)

	resp = b.post("/select", url.Values{"movie": {fmt.Sprint(batch[0].ID)}})
	require.Equal(b.t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(b.t, "/home", resp.Header.Get("Location"))
}

func home(b *browser) homeData {
	resp := b.get("/home")
	require.Equal(b.t, http.StatusOK, resp.StatusCode)
	name, _, data := view[homeData](b.t, resp)
	require.Equal(b.t, "home", name)
	return data
}

func TestEndToEnd_RegisterLoginSearchSelect(t *testing.T) {
	app := newApp(t)
	b := newBrowser(t, app.URL)

	register(b, "user@example.com")

	resp := b.get("/logout")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp = b.get("/home")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp = b.post("/login", url.Values{"email": {"user@example.com"}, "password": {"pw123"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	saveInception(b)
	saveInception(b)

	data := home(b)
	assert.Equal(t, "Ann", data.Name)
	require.Len(t, data.Movies, 1)

	entry := data.Movies[0]
	assert.Equal(t, "Inception", entry.Movie.Title)
	assert.Equal(t, 2010, entry.Movie.Year)
	require.NotNil(t, entry.Movie.ImageURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/inception.jpg", *entry.Movie.ImageURL)
	assert.Equal(t, []string{"Netflix", "Hulu"}, entry.Services)
	assert.Equal(t, []string{
		"https://www.netflix.com/title/70131314",
		"https://www.hulu.com/movie/inception",
	}, entry.Links)
}

func TestEndToEnd_AuthFailures(t *testing.T) {
	app := newApp(t)
	b := newBrowser(t, app.URL)
	register(b, "user@example.com")

	other := newBrowser(t, app.URL)

	resp := other.post("/register", url.Values{"email": {"user@example.com"}, "password": {"x"}, "name": {"Bob"}})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	_, flash, _ := view[any](t, resp)
	assert.Equal(t, "This email is already being used", flash)

	resp = other.post("/login", url.Values{"email": {"nobody@example.com"}, "password": {"pw123"}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_, flash, _ = view[any](t, resp)
	assert.Equal(t, "Invalid User, please try again", flash)

	resp = other.post("/login", url.Values{"email": {"user@example.com"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	_, flash, _ = view[any](t, resp)
	assert.Equal(t, "Invalid password, please try again", flash)

	resp = other.get("/select")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestEndToEnd_LongPassword(t *testing.T) {
	app := newApp(t)
	b := newBrowser(t, app.URL)
	password := strings.Repeat("p", 80)

	resp := b.post("/register", url.Values{"email": {"long@example.com"}, "password": {password}, "name": {"Ann"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	other := newBrowser(t, app.URL)
	resp = other.post("/login", url.Values{"email": {"long@example.com"}, "password": {password[:72]}})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = other.post("/login", url.Values{"email": {"long@example.com"}, "password": {password}})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/home", resp.Header.Get("Location"))
}

func TestEndToEnd_SharedCatalogAndDelete(t *testing.T) {
	app := newApp(t)

	ann := newBrowser(t, app.URL)
	register(ann, "ann@example.com")
	saveInception(ann)

	bob := newBrowser(t, app.URL)
	register(bob, "bob@example.com")
	saveInception(bob)

	annMovies := home(ann).Movies
	bobMovies := home(bob).Movies
	require.Len(t, annMovies, 1)
	require.Len(t, bobMovies, 1)
	assert.Equal(t, annMovies[0].Movie.ID, bobMovies[0].Movie.ID)

	movieID := annMovies[0].Movie.ID

	resp := ann.post(fmt.Sprintf("/delete/id=%d", movieID), nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Empty(t, home(ann).Movies)
	assert.Len(t, home(bob).Movies, 1)

	resp = ann.post(fmt.Sprintf("/delete/id=%d", movieID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = bob.post(fmt.Sprintf("/catalog/delete/id=%d", movieID), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	root := newBrowser(t, app.URL)
	register(root, adminEmail)

	resp = root.post(fmt.Sprintf("/catalog/delete/id=%d", movieID), nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Empty(t, home(bob).Movies)

	resp = root.post(fmt.Sprintf("/catalog/delete/id=%d", movieID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEndToEnd_ConcurrentSelectSameTitle(t *testing.T) {
	app := newAppWithStreaming(t, gatedStreamingHandler(t, 2))

	users := []*browser{newBrowser(t, app.URL), newBrowser(t, app.URL)}
	for i, b := range users {
		register(b, fmt.Sprintf("user%d@example.com", i))
		resp := b.post("/add", url.Values{"title": {"Inception"}})
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	}

	codes := make([]int, len(users))
	errs := make([]error, len(users))
	var wg sync.WaitGroup
	for i, b := range users {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := b.client.PostForm(b.base+"/select", url.Values{"movie": {"27205"}})
			if err != nil {
				errs[i] = err
				return
			}
			resp.Body.Close()
			codes[i] = resp.StatusCode
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, []int{http.StatusSeeOther, http.StatusSeeOther}, codes)

	first := home(users[0]).Movies
	second := home(users[1]).Movies
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Movie.ID, second[0].Movie.ID)
	assert.Equal(t, []string{"Netflix", "Hulu"}, second[0].Services)
}

func TestEndToEnd_SelectWithoutSearch(t *testing.T) {
	app := newApp(t)
	b := newBrowser(t, app.URL)
	register(b, "user@example.com")

	resp := b.get("/select")
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/add", resp.Header.Get("Location"))
}

func TestEndToEnd_PublicPages(t *testing.T) {
	app := newApp(t)
	b := newBrowser(t, app.URL)

	for path, want := range map[string]string{"/": "index", "/login": "login", "/register": "register"} {
		resp := b.get(path)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		name, _, _ := view[any](t, resp)
		assert.Equal(t, want, name)
		assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json"))
	}
}
