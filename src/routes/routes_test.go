package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"Backend-Masons-Leads/src/controllers"
	"Backend-Masons-Leads/src/models"
	"Backend-Masons-Leads/src/services/admins"
	"Backend-Masons-Leads/src/services/leads"
	"Backend-Masons-Leads/src/services/photos"
	"Backend-Masons-Leads/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// memorySheet keeps rows per role and dedupes on the role's unique column.
type memorySheet struct {
	mu   sync.Mutex
	rows map[models.UserType][][]string
}

func (m *memorySheet) CheckDuplicate(_ context.Context, _ string, role models.UserType, value string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	col := map[models.UserType]int{
		models.UserTypeMediaBuying: 2,
		models.UserTypeAdvertiser:  3,
		models.UserTypeServiceRep:  2,
		models.UserTypeOther:       1,
	}[role]
	for _, row := range m.rows[role] {
		if col < len(row) && strings.Contains(strings.ToLower(row[col]), strings.ToLower(value)) {
			return true
		}
	}
	return false
}

func (m *memorySheet) AppendRow(_ context.Context, _ string, lead models.Lead) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[lead.Role()] = append(m.rows[lead.Role()], lead.Row())
	return nil
}

type memoryBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memoryBlobs) Upload(_ context.Context, _ string, _ photos.ObjectMeta, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID().Hex()
	m.objects[id] = append([]byte(nil), data...)
	return id, nil
}

func (m *memoryBlobs) Download(_ context.Context, id string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[id]
	if !ok {
		return nil, photos.ErrPhotoNotFound
	}
	return data, nil
}

type memoryFolders struct {
	mu      sync.Mutex
	folders []models.PhotoFolder
}

func (m *memoryFolders) Insert(_ context.Context, folder *models.PhotoFolder) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	folder.ID = primitive.NewObjectID()
	m.folders = append(m.folders, *folder)
	return folder.ID.Hex(), nil
}

func (m *memoryFolders) FindAll(_ context.Context) ([]models.PhotoFolder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.PhotoFolder(nil), m.folders...), nil
}

const galleryPassword = "gallery-pass"

func newTestApp(t *testing.T) (*fiber.App, *memorySheet) {
	sheet := &memorySheet{rows: map[models.UserType][][]string{
		models.UserTypeMediaBuying: {{"userType", "fullName", "telegram"}, {"mediaBuying", "Alice", "alice_media"}},
	}}
	photoSvc := photos.NewService(&memoryBlobs{objects: map[string][]byte{}}, &memoryFolders{})
	leadSvc := leads.NewService(leads.Deps{
		SpreadsheetID: "sheet-1",
		Checker:       sheet,
		Appender:      sheet,
		Photos:        photoSvc,
	})

	issuer, err := utils.NewTokenIssuer("s3cret")
	require.NoError(t, err)
	hash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	app := fiber.New()
	InitRoutes(app, Handlers{
		Leads:          controllers.NewLeadController(leadSvc),
		Photos:         controllers.NewPhotoController(photoSvc),
		Auth:           controllers.NewAuthController(admins.NewService(map[string]string{"root": string(hash)}, issuer)),
		PhotosPassword: galleryPassword,
		Tokens:         issuer,
	})
	return app, sheet
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSubmitFormEndToEnd(t *testing.T) {
	app, sheet := newTestApp(t)

	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/api/submit-form", `{"userType":"mediaBuying","teamName":"Red"}`))
	assert.Equal(t, fiber.StatusConflict, postJSON(t, app, "/api/submit-form", `{"userType":"mediaBuying","telegram":"alice_media"}`))
	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/api/submit-form", `{"userType":"mediaBuying","fullName":"Bob","telegram":"bob_media"}`))
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/api/submit-form", `{"userType":"partner","fullName":"Zed"}`))

	rows := sheet.rows[models.UserTypeMediaBuying]
	require.Len(t, rows, 3)
	assert.Equal(t, "bob_media", rows[2][2])
	assert.Equal(t, leads.NoValidImages, rows[2][7])
}

func TestPhotoRoundTrip(t *testing.T) {
	app, sheet := newTestApp(t)
	original := bytes.Repeat([]byte{0xff, 0xd8, 0x00, 0x10}, 100_000)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("userType", "mediaBuying"))
	require.NoError(t, w.WriteField("fullName", "Carol"))
	require.NoError(t, w.WriteField("telegram", "carol_media"))
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="photos"; filename="c.jpg"`)
	h.Set("Content-Type", "image/jpeg")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(original)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/submit-form", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	rows := sheet.rows[models.UserTypeMediaBuying]
	assert.True(t, strings.HasPrefix(rows[len(rows)-1][7], "MongoDB folder ID: "))

	resp, err = app.Test(httptest.NewRequest("GET", "/api/photos?password="+galleryPassword, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var listing struct {
		Users []models.PhotoFolder `json:"users"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
	require.Len(t, listing.Users, 1)
	require.Len(t, listing.Users[0].Photos, 1)
	photoID := listing.Users[0].Photos[0].GridFSID

	resp, err = app.Test(httptest.NewRequest("GET", fmt.Sprintf("/api/photos/%s?password=%s", photoID, galleryPassword), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	got, _ := io.ReadAll(resp.Body)
	assert.Equal(t, original, got)

	resp, err = app.Test(httptest.NewRequest("GET", fmt.Sprintf("/api/photos/%s?password=wrong", photoID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	got, _ = io.ReadAll(resp.Body)
	assert.Empty(t, got)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/photos?password=wrong", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminTokenGrantsPhotoAccess(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Equal(t, fiber.StatusUnauthorized, postJSON(t, app, "/api/admin/login", `{"name":"root","password":"nope"}`))

	req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(`{"name":"root","password":"admin-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	req = httptest.NewRequest("GET", "/api/photos", nil)
	req.Header.Set("Authorization", "Bearer "+out.Token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
