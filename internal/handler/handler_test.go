package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusconnect/backend/internal/account"
	"campusconnect/backend/internal/auth"
	"campusconnect/backend/internal/hub"
	"campusconnect/backend/internal/messaging"
	"campusconnect/backend/internal/models"
	"campusconnect/backend/internal/profile"
	"campusconnect/backend/internal/relationship"
	"campusconnect/backend/internal/report"
	"campusconnect/backend/internal/storage"
	"campusconnect/backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "handler-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	hub    *hub.Hub
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.NewDB(t)
	h := hub.NewHub()
	photos, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)
	log := zap.NewNop()

	engine := relationship.NewEngine(db, h)
	handler := &Handler{
		Accounts:       account.NewService(db, engine, photos, testSecret, log),
		Profiles:       profile.NewService(db, photos, log),
		Relationships:  engine,
		Messages:       messaging.NewChannel(db, h),
		Reports:        report.NewService(db),
		Hub:            h,
		Log:            log,
		UploadMaxBytes: 1024,
		LiveBufferSize: 8,
	}

	router := gin.New()
	router.GET("/ping", Ping)
	handler.RegisterRoutes(router, Middlewares{
		Auth:  auth.AuthMiddleware(testSecret),
		Admin: auth.AdminMiddleware(db),
	})
	return &testServer{router: router, db: db, hub: h}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers ...string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func (s *testServer) register(t *testing.T, firstName, email string) string {
	t.Helper()
	w, body := s.do(t, http.MethodPost, "/register/user", gin.H{
		"firstName": firstName, "lastName": "Doe", "email": email, "password": "pw", "sexe": "m",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return body["userId"].(string)
}

func TestPing(t *testing.T) {
	s := newTestServer(t)
	w, body := s.do(t, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", body["message"])
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	joe := s.register(t, "Joe", "joe@x.com")
	assert.NotEmpty(t, joe)

	w, body := s.do(t, http.MethodPost, "/register/user", gin.H{
		"firstName": "Joe", "lastName": "Doe", "email": "joe@x.com", "password": "pw", "sexe": "m",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "conflict", body["error"])

	w, body = s.do(t, http.MethodPost, "/register/user", gin.H{"firstName": "Joe", "email": "ann@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_input", body["error"])

	w, body = s.do(t, http.MethodPost, "/login/user", gin.H{"email": "joe@x.com", "password": "pw"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, body["token"])
	prof := body["profile"].(map[string]interface{})
	assert.Equal(t, "Joe", prof["firstName"])
	assert.Equal(t, joe, prof["userId"])

	w, _ = s.do(t, http.MethodPost, "/login/user", gin.H{"email": "joe@x.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(t, http.MethodPost, "/login/user", gin.H{"email": "ghost@x.com", "password": "pw"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUser(t *testing.T) {
	s := newTestServer(t)
	joe := s.register(t, "Joe", "joe@x.com")

	w, _ := s.do(t, http.MethodPut, "/user/"+joe, gin.H{"password": "newpw"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodPost, "/login/user", gin.H{"email": "joe@x.com", "password": "newpw"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodPut, "/user/6a1f3b1e-0000-4000-8000-000000000000", gin.H{"password": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFriendshipFlow(t *testing.T) {
	s := newTestServer(t)
	a := s.register(t, "Ann", "ann@x.com")
	b := s.register(t, "Ben", "ben@x.com")

	w, _ := s.do(t, http.MethodPost, "/friends/user", gin.H{"senderId": a, "receiverId": b})
	require.Equal(t, http.StatusCreated, w.Code)

	w, body := s.do(t, http.MethodPost, "/friends/user", gin.H{"senderId": b, "receiverId": a})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "conflict", body["error"])

	w, body = s.do(t, http.MethodGet, "/friends/pending/user/"+b, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["friends"], 1)

	w, _ = s.do(t, http.MethodPut, "/friends/user", gin.H{"senderId": a, "receiverId": b, "status": "maybe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodPut, "/friends/user", gin.H{"senderId": a, "receiverId": b, "status": "accepted"})
	require.Equal(t, http.StatusOK, w.Code)

	w, body = s.do(t, http.MethodGet, "/friends/accepted/user/"+b, nil)
	require.Equal(t, http.StatusOK, w.Code)
	friends := body["friends"].([]interface{})
	require.Len(t, friends, 1)
	assert.Equal(t, a, friends[0].(map[string]interface{})["userId"])

	w, body = s.do(t, http.MethodGet, "/friends/refused/user/"+a, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["friends"])

	w, _ = s.do(t, http.MethodGet, "/friends/accepted/user/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRelationCascadesConversation(t *testing.T) {
	s := newTestServer(t)
	a := s.register(t, "Ann", "ann@x.com")
	b := s.register(t, "Ben", "ben@x.com")

	w, _ := s.do(t, http.MethodPost, "/friends/user", gin.H{"senderId": a, "receiverId": b})
	require.Equal(t, http.StatusCreated, w.Code)
	for _, content := range []string{"hi", "hello"} {
		w, _ = s.do(t, http.MethodPost, "/send", gin.H{"senderId": a, "receiverId": b, "content": content})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, body := s.do(t, http.MethodDelete, "/friends/user", gin.H{"senderId": b, "receiverId": a})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["deletedMessagesCount"])

	w, body = s.do(t, http.MethodGet, "/conversation/"+a+"/"+b, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["messages"])

	w, _ = s.do(t, http.MethodDelete, "/friends/user", gin.H{"senderId": a, "receiverId": b})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMessagesSendEditConversation(t *testing.T) {
	s := newTestServer(t)
	a := s.register(t, "Ann", "ann@x.com")
	b := s.register(t, "Ben", "ben@x.com")

	w, body := s.do(t, http.MethodPost, "/send", gin.H{"senderId": a, "receiverId": b, "content": "helo"})
	require.Equal(t, http.StatusOK, w.Code)
	sent := body["newMessage"].(map[string]interface{})
	id := sent["id"].(string)
	assert.NotEmpty(t, sent["timestamp"])

	w, _ = s.do(t, http.MethodPost, "/send", gin.H{"senderId": a, "receiverId": b})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = s.do(t, http.MethodPut, "/edit/"+id, gin.H{"content": "hello"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", body["updatedMessage"].(map[string]interface{})["content"])

	w, _ = s.do(t, http.MethodPut, "/edit/"+id, gin.H{"content": "hello"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodPut, "/edit/"+id, gin.H{"content": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = s.do(t, http.MethodGet, "/messages/conversation/"+b+"/"+a, nil)
	require.Equal(t, http.StatusOK, w.Code)
	messages := body["messages"].([]interface{})
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].(map[string]interface{})["content"])
}

func TestDeleteUserCascades(t *testing.T) {
	s := newTestServer(t)
	a := s.register(t, "Ann", "ann@x.com")
	b := s.register(t, "Ben", "ben@x.com")

	s.do(t, http.MethodPost, "/friends/user", gin.H{"senderId": a, "receiverId": b})
	s.do(t, http.MethodPost, "/send", gin.H{"senderId": b, "receiverId": a, "content": "hey"})

	w, body := s.do(t, http.MethodDelete, "/delete/user/"+a, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["deletedProfilesCount"])
	assert.Equal(t, float64(1), body["deletedRelationshipsCount"])
	assert.Equal(t, float64(1), body["deletedMessagesCount"])

	w, _ = s.do(t, http.MethodGet, "/profiles/user/"+a, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = s.do(t, http.MethodDelete, "/delete/user/"+a, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfiles(t *testing.T) {
	s := newTestServer(t)
	a := s.register(t, "Ann", "ann@x.com")
	s.register(t, "Ben", "ben@x.com")

	w, body := s.do(t, http.MethodPut, "/profiles/user/"+a, gin.H{"bio": "hi", "interests": []string{"go", "chess"}})
	require.Equal(t, http.StatusOK, w.Code)

	w, body = s.do(t, http.MethodPut, "/profiles/user/"+a, gin.H{"interests": []string{"chess", "music"}})
	require.Equal(t, http.StatusOK, w.Code)
	prof := body["profile"].(map[string]interface{})
	assert.Equal(t, []interface{}{"go", "chess", "music"}, prof["interests"])
	assert.Equal(t, "hi", prof["bio"])

	w, _ = s.do(t, http.MethodPut, "/profiles/user/6a1f3b1e-0000-4000-8000-000000000000", gin.H{"bio": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = s.do(t, http.MethodGet, "/profiles/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["profiles"], 2)
	assert.Nil(t, body["meta"])

	w, body = s.do(t, http.MethodGet, "/profiles/users?page=1&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["profiles"], 1)
	assert.Equal(t, float64(2), body["meta"].(map[string]interface{})["total_pages"])

	w, body = s.do(t, http.MethodGet, "/profiles/users?page=9223372036854775807&limit=100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["profiles"])
	assert.Equal(t, float64(maxPage), body["meta"].(map[string]interface{})["current_page"])
}

func upload(t *testing.T, s *testServer, userID string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("userId", userID))
	part, err := mw.CreateFormFile("file", "me.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestUploadAndDownloadPhoto(t *testing.T) {
	s := newTestServer(t)
	a := s.register(t, "Ann", "ann@x.com")

	w, _ := s.do(t, http.MethodGet, "/file/"+a, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = upload(t, s, a, []byte("fake-png"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/file/"+a, body["fileUrl"])

	req := httptest.NewRequest(http.MethodGet, "/file/"+a, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fake-png", rec.Body.String())

	w = upload(t, s, "6a1f3b1e-0000-4000-8000-000000000000", []byte("x"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = upload(t, s, a, bytes.Repeat([]byte("x"), 2048))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReports(t *testing.T) {
	s := newTestServer(t)
	a := s.register(t, "Ann", "ann@x.com")
	b := s.register(t, "Ben", "ben@x.com")

	w, _ := s.do(t, http.MethodPost, "/signalement", gin.H{"reporterId": a, "reportedId": b, "reason": "spam"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = s.do(t, http.MethodPost, "/signalement", gin.H{"reporterId": a})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(t, http.MethodGet, "/signalements", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	_, login := s.do(t, http.MethodPost, "/login/user", gin.H{"email": "ann@x.com", "password": "pw"})
	token := login["token"].(string)
	w, _ = s.do(t, http.MethodGet, "/signalements", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	require.NoError(t, s.db.Model(&models.Account{}).Where("id = ?", a).Update("role", models.RoleAdmin).Error)
	w, body := s.do(t, http.MethodGet, "/signalements", nil, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["reports"], 1)
}
