package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	moderncSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/database"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/models"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/utils"
)

const (
	testAdminEmail    = "admin@club.test"
	testAdminPassword = "pavilion-end"
)

type fakeUploader struct {
	mu  sync.Mutex
	n   int
	err error
}

func (f *fakeUploader) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.n++
	return fmt.Sprintf("https://cdn.test/%d-%s", f.n, file.Filename), nil
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(moderncSqlite.New(moderncSqlite.Config{
		DSN:        dsn,
		DriverName: "sqlite",
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("underlying db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *utils.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := openTestDB(t)
	if err := db.Create(&models.Admin{Email: testAdminEmail, Password: testAdminPassword}).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	tokens := utils.NewTokenManager("test-secret")
	r := SetupRouter(Deps{
		DB:         db,
		Store:      &fakeUploader{},
		Cache:      nil,
		Tokens:     tokens,
		AdminEmail: testAdminEmail,
		UploadDir:  t.TempDir(),
	})
	return r, db, tokens
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField %s: %v", k, err)
		}
	}
	for field, name := range files {
		fw, err := w.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("CreateFormFile %s: %v", field, err)
		}
		if _, err := fw.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func doRequest(r *gin.Engine, method, path string, body *bytes.Buffer, contentType, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, body)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(payload)
	return doRequest(r, http.MethodPost, path, bytes.NewBuffer(raw), "application/json", "")
}

func TestCreatePlayerWithImage(t *testing.T) {
	r, db, _ := setupRouter(t)

	body, ct := multipartBody(t,
		map[string]string{"name": "A. Sharma", "jerseyNo": "7", "role": "Batsman"},
		map[string]string{"image": "sharma.jpg"},
	)
	rec := doRequest(r, http.MethodPost, "/api/v1/players", body, ct, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string        `json:"message"`
		Player  models.Player `json:"player"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(resp.Player.Image, "https://cdn.test/") {
		t.Fatalf("player.image = %q, want gateway URL", resp.Player.Image)
	}
	if resp.Player.SubRole != models.SubRolePlayer {
		t.Fatalf("subRole default = %q", resp.Player.SubRole)
	}

	rec = doRequest(r, http.MethodGet, "/api/v1/players", nil, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var players []models.Player
	if err := json.Unmarshal(rec.Body.Bytes(), &players); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(players) != 1 || players[0].Name != "A. Sharma" {
		t.Fatalf("list = %+v", players)
	}

	var count int64
	db.Model(&models.Player{}).Count(&count)
	if count != 1 {
		t.Fatalf("persisted %d players, want 1", count)
	}
}

func TestCreatePlayerMissingRequiredField(t *testing.T) {
	r, db, _ := setupRouter(t)

	body, ct := multipartBody(t,
		map[string]string{"jerseyNo": "7", "role": "Batsman"}, // no name
		map[string]string{"image": "x.jpg"},
	)
	rec := doRequest(r, http.MethodPost, "/api/v1/players", body, ct, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var count int64
	db.Model(&models.Player{}).Count(&count)
	if count != 0 {
		t.Fatalf("persisted %d players after rejected create", count)
	}
}

func TestCreatePlayerMissingImage(t *testing.T) {
	r, db, _ := setupRouter(t)

	body, ct := multipartBody(t,
		map[string]string{"name": "B. Patil", "jerseyNo": "3", "role": "Bowler"},
		nil,
	)
	rec := doRequest(r, http.MethodPost, "/api/v1/players", body, ct, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var count int64
	db.Model(&models.Player{}).Count(&count)
	if count != 0 {
		t.Fatalf("persisted %d players after rejected create", count)
	}
}

func TestCreatePlayerUploadFailureNothingPersisted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)

	r := SetupRouter(Deps{
		DB:         db,
		Store:      &fakeUploader{err: errors.New("bucket unreachable")},
		Cache:      nil,
		Tokens:     utils.NewTokenManager("test-secret"),
		AdminEmail: testAdminEmail,
		UploadDir:  t.TempDir(),
	})

	body, ct := multipartBody(t,
		map[string]string{"name": "E. More", "jerseyNo": "9", "role": "Batsman"},
		map[string]string{"image": "more.jpg"},
	)
	rec := doRequest(r, http.MethodPost, "/api/v1/players", body, ct, "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500, body = %s", rec.Code, rec.Body.String())
	}

	var count int64
	db.Model(&models.Player{}).Count(&count)
	if count != 0 {
		t.Fatalf("persisted %d players after failed upload", count)
	}
}

func TestUpdatePlayerPreservesImageWithoutNewFile(t *testing.T) {
	r, db, _ := setupRouter(t)

	body, ct := multipartBody(t,
		map[string]string{"name": "C. Jadhav", "jerseyNo": "11", "role": "All-rounder"},
		map[string]string{"image": "jadhav.jpg"},
	)
	rec := doRequest(r, http.MethodPost, "/api/v1/players", body, ct, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}
	var created struct {
		Player models.Player `json:"player"`
	}
	json.Unmarshal(rec.Body.Bytes(), &created)

	body, ct = multipartBody(t, map[string]string{"jerseyNo": "12"}, nil)
	rec = doRequest(r, http.MethodPut, fmt.Sprintf("/api/v1/players/%d", created.Player.ID), body, ct, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var stored models.Player
	db.First(&stored, created.Player.ID)
	if stored.JerseyNo != 12 {
		t.Fatalf("jerseyNo = %d, want 12", stored.JerseyNo)
	}
	if stored.Image != created.Player.Image {
		t.Fatalf("image changed: %q -> %q", created.Player.Image, stored.Image)
	}
	if stored.Name != "C. Jadhav" {
		t.Fatalf("name overwritten: %q", stored.Name)
	}
}

func TestUpdateUnknownIDReturns404(t *testing.T) {
	r, db, _ := setupRouter(t)

	body, ct := multipartBody(t, map[string]string{"result": "abandoned"}, nil)
	rec := doRequest(r, http.MethodPut, "/api/v1/fixtures/9999", body, ct, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var count int64
	db.Model(&models.Fixture{}).Count(&count)
	if count != 0 {
		t.Fatalf("fixture table modified: %d rows", count)
	}
}

func TestPlayerStatsMergeWithinMonth(t *testing.T) {
	r, _, _ := setupRouter(t)

	body, ct := multipartBody(t,
		map[string]string{"name": "D. Kale", "jerseyNo": "5", "role": "Bowler"},
		map[string]string{"image": "kale.jpg"},
	)
	rec := doRequest(r, http.MethodPost, "/api/v1/players", body, ct, "")
	var created struct {
		Player models.Player `json:"player"`
	}
	json.Unmarshal(rec.Body.Bytes(), &created)

	statsPath := fmt.Sprintf("/api/v1/players/%d/stats", created.Player.ID)
	for _, delta := range []map[string]int{{"runs": 30, "wickets": 2}, {"runs": 12, "wickets": 1}} {
		raw, _ := json.Marshal(delta)
		rec = doRequest(r, http.MethodPut, statsPath, bytes.NewBuffer(raw), "application/json", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("stats status = %d, body = %s", rec.Code, rec.Body.String())
		}
	}

	var resp struct {
		Player models.Player `json:"player"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	snaps := resp.Player.MonthlyStats.Data()
	if len(snaps) != 1 {
		t.Fatalf("got %d snapshots, want 1: %+v", len(snaps), snaps)
	}
	if snaps[0].Runs != 42 || snaps[0].Wickets != 3 {
		t.Fatalf("snapshot = %+v, want runs=42 wickets=3", snaps[0])
	}
	if resp.Player.Runs != 42 || resp.Player.Wickets != 3 {
		t.Fatalf("career totals = %d/%d", resp.Player.Runs, resp.Player.Wickets)
	}
}

func TestCarouselListCapsAtFourNewestFirst(t *testing.T) {
	r, db, _ := setupRouter(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 6; i++ {
		item := models.CarouselItem{
			Image:     fmt.Sprintf("https://cdn.test/slide-%d.jpg", i),
			Caption:   fmt.Sprintf("slide %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("seed carousel: %v", err)
		}
	}

	rec := doRequest(r, http.MethodGet, "/api/v1/carousel", nil, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var items []models.CarouselItem
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("got %d items, want 4", len(items))
	}
	if items[0].Caption != "slide 5" || items[3].Caption != "slide 2" {
		t.Fatalf("unexpected order: %q ... %q", items[0].Caption, items[3].Caption)
	}
}

func TestContactValidation(t *testing.T) {
	r, db, _ := setupRouter(t)

	// A mobile must be exactly ten digits: ten-character strings with a
	// sign or decimal point are rejected too.
	for _, mobile := range []string{"12345", "+123456789", "-123456789", "12.3456789"} {
		rec := postJSON(r, "/api/v1/contact", map[string]string{
			"name": "R. Gavde", "mobile": mobile, "email": "r@example.com", "message": "hello",
		})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("mobile %q: status = %d, want 400", mobile, rec.Code)
		}
	}
	var count int64
	db.Model(&models.ContactMessage{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid submission persisted: %d rows", count)
	}

	rec := postJSON(r, "/api/v1/contact", map[string]string{
		"name": "R. Gavde", "mobile": "9876543210", "email": "r@example.com", "message": "hello",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("valid submission: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	db.Model(&models.ContactMessage{}).Count(&count)
	if count != 1 {
		t.Fatalf("persisted %d rows, want 1", count)
	}

	var stored models.ContactMessage
	db.First(&stored)
	if stored.Mobile != "9876543210" || stored.Name != "R. Gavde" {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestContactInboxRequiresToken(t *testing.T) {
	r, _, tokens := setupRouter(t)

	rec := doRequest(r, http.MethodGet, "/api/v1/contact", nil, "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", rec.Code)
	}

	token, err := tokens.Generate(testAdminEmail)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	rec = doRequest(r, http.MethodGet, "/api/v1/contact", nil, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("with token: status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestLogin(t *testing.T) {
	r, _, tokens := setupRouter(t)

	rec := postJSON(r, "/api/v1/auth/login", map[string]string{
		"email": "wrong@club.test", "password": testAdminPassword,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong email: status = %d, want 401", rec.Code)
	}

	rec = postJSON(r, "/api/v1/auth/login", map[string]string{
		"email": testAdminEmail, "password": "wrong",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: status = %d, want 401", rec.Code)
	}
	var errBody struct {
		Message string `json:"message"`
	}
	json.Unmarshal(rec.Body.Bytes(), &errBody)
	if errBody.Message != "Invalid password" {
		t.Fatalf("message = %q, want %q", errBody.Message, "Invalid password")
	}

	rec = postJSON(r, "/api/v1/auth/login", map[string]string{
		"email": testAdminEmail, "password": testAdminPassword,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var ok struct {
		Token string `json:"token"`
	}
	json.Unmarshal(rec.Body.Bytes(), &ok)
	if ok.Token == "" {
		t.Fatal("empty token")
	}

	claims, err := tokens.Parse(ok.Token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 55*time.Minute || remaining > 65*time.Minute {
		t.Fatalf("expiry %v from now, want about 1h", remaining)
	}
}

func TestInfoLatestWins(t *testing.T) {
	r, db, _ := setupRouter(t)

	old := models.ClubInfo{Name: "BCC Kuraloshi", Tagline: "old", CreatedAt: time.Now().Add(-time.Hour)}
	cur := models.ClubInfo{Name: "BCC Kuraloshi", Tagline: "new", CreatedAt: time.Now()}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := db.Create(&cur).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec := doRequest(r, http.MethodGet, "/api/v1/info/latest", nil, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var info models.ClubInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.Tagline != "new" {
		t.Fatalf("latest tagline = %q, want %q", info.Tagline, "new")
	}
}

func TestCreateFixtureUploadsBothLogos(t *testing.T) {
	r, _, _ := setupRouter(t)

	body, ct := multipartBody(t,
		map[string]string{
			"date": "2026-09-05", "matchNo": "3",
			"teamAName": "BCC Kuraloshi", "teamBName": "Rivals CC",
			"venue": "Village Ground",
		},
		map[string]string{"teamALogo": "bcc.png", "teamBLogo": "rivals.png"},
	)
	rec := doRequest(r, http.MethodPost, "/api/v1/fixtures", body, ct, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Fixture models.Fixture `json:"fixture"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Fixture.TeamA.Logo == "" || resp.Fixture.TeamB.Logo == "" {
		t.Fatalf("logos not uploaded: %+v", resp.Fixture)
	}
	if resp.Fixture.TeamA.Logo == resp.Fixture.TeamB.Logo {
		t.Fatal("both teams got the same logo URL")
	}
	if resp.Fixture.Status != models.FixtureUpcoming {
		t.Fatalf("status default = %q", resp.Fixture.Status)
	}
}

func TestGalleryCreateWithExtraImages(t *testing.T) {
	r, _, _ := setupRouter(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("caption", "Season opener")
	fw, _ := w.CreateFormFile("thumbnail", "thumb.jpg")
	fw.Write([]byte("thumb"))
	for i := 0; i < 2; i++ {
		fw, _ = w.CreateFormFile("images", fmt.Sprintf("extra-%d.jpg", i))
		fw.Write([]byte("extra"))
	}
	w.Close()

	rec := doRequest(r, http.MethodPost, "/api/v1/gallery", &buf, w.FormDataContentType(), "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Gallery models.GalleryItem `json:"gallery"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Gallery.Thumbnail == "" {
		t.Fatal("thumbnail missing")
	}
	if got := len(resp.Gallery.Images.Data()); got != 2 {
		t.Fatalf("got %d extra images, want 2", got)
	}
}

func TestGetUnknownPlayerReturns404(t *testing.T) {
	r, _, _ := setupRouter(t)

	rec := doRequest(r, http.MethodGet, "/api/v1/players/42", nil, "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body struct {
		Message string `json:"message"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Message == "" {
		t.Fatal("404 body missing message")
	}
}
