package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/finsight/server/internal/auth"
	httphandler "github.com/finsight/server/internal/http"
	"github.com/finsight/server/internal/http/handlers"
	"github.com/finsight/server/internal/model"
	"github.com/finsight/server/internal/news"
	"github.com/finsight/server/internal/repo"
)

const testSessionSecret = "test-session-secret"

// fakeUserRepo is an in-memory UserRepo
type fakeUserRepo struct {
	users map[uuid.UUID]model.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, name, email, passwordHash, location, phone string) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return model.User{}, repo.ErrDuplicateEmail
		}
	}
	user := model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Location:     location,
		Phone:        phone,
		Role:         "User",
		CreatedAt:    time.Now(),
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repo.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return model.User{}, repo.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if f.err != nil {
		return f.err
	}
	user, ok := f.users[id]
	if !ok {
		return repo.ErrNotFound
	}
	user.PasswordHash = passwordHash
	f.users[id] = user
	return nil
}

// fakeOtpStore is an in-memory OtpRepo
type fakeOtpStore struct {
	recs []model.OtpRecord
	seq  int
}

func (f *fakeOtpStore) Insert(ctx context.Context, email, code, expiresAt string) (uuid.UUID, error) {
	f.seq++
	rec := model.OtpRecord{
		ID:        uuid.New(),
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().Add(time.Duration(f.seq) * time.Millisecond),
	}
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeOtpStore) LatestUnused(ctx context.Context, email string) (model.OtpRecord, error) {
	candidates := make([]model.OtpRecord, 0)
	for _, rec := range f.recs {
		if rec.Email == email && !rec.Used {
			candidates = append(candidates, rec)
		}
	}
	if len(candidates) == 0 {
		return model.OtpRecord{}, repo.ErrNotFound
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.After(candidates[j].CreatedAt)
	})
	return candidates[0], nil
}

func (f *fakeOtpStore) MarkUsed(ctx context.Context, id uuid.UUID) error {
	for i := range f.recs {
		if f.recs[i].ID == id {
			f.recs[i].Used = true
			return nil
		}
	}
	return repo.ErrNotFound
}

// sentMail records one delivered OTP
type sentMail struct {
	Email string
	Code  string
}

// fakeSender is an in-memory mail.Sender
type fakeSender struct {
	configured bool
	failWith   error
	sent       []sentMail
}

func (f *fakeSender) Configured() bool { return f.configured }

func (f *fakeSender) SendOTP(email, code string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.sent = append(f.sent, sentMail{Email: email, Code: code})
	return nil
}

// testEnv wires the full router over in-memory fakes
type testEnv struct {
	Server   *httptest.Server
	Client   *http.Client
	Users    *fakeUserRepo
	Otps     *fakeOtpStore
	Sender   *fakeSender
	Sessions *auth.Sessions
}

func newTestEnv(t *testing.T, staticDir string) *testEnv {
	t.Helper()

	users := newFakeUserRepo()
	otps := &fakeOtpStore{}
	sender := &fakeSender{configured: true}
	sessions := auth.NewSessions(testSessionSecret)
	ledger := auth.NewLedger(otps)

	authHandler := handlers.NewAuthHandler(ledger, sender, users, sessions)
	profileHandler := handlers.NewProfileHandler(users)
	newsHandler := handlers.NewNewsHandler(news.Seed())
	staticHandler := handlers.NewStaticHandler(staticDir)

	router := httphandler.NewRouter(authHandler, profileHandler, newsHandler, staticHandler, sessions)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{
		Server:   server,
		Client:   server.Client(),
		Users:    users,
		Otps:     otps,
		Sender:   sender,
		Sessions: sessions,
	}
}

// postJSON issues a POST with a JSON body and optional session cookie
func (e *testEnv) postJSON(t *testing.T, path string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, e.Server.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := e.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// get issues a GET with an optional session cookie
func (e *testEnv) get(t *testing.T, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, e.Server.URL+path, nil)
	require.NoError(t, err)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := e.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes the response body into out and closes it
func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out), "body: %s", data)
}

// sessionCookieFrom extracts the session cookie set by a response
func sessionCookieFrom(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "session" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

// register creates an account and returns the user ID and session cookie
func (e *testEnv) register(t *testing.T, email, password string) (string, *http.Cookie) {
	t.Helper()
	resp := e.postJSON(t, "/create-account", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": password,
		"location": "Mumbai",
		"phone":    "9999999999",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookie := sessionCookieFrom(t, resp)
	var body struct {
		Created bool `json:"created"`
		User    struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, resp, &body)
	require.True(t, body.Created)
	return body.User.ID, cookie
}

var errRelayDown = errors.New("relay connection refused")
