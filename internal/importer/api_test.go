package importer_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/cokeke26/fenats/internal/importer"
	"github.com/cokeke26/fenats/internal/member"
	sharedError "github.com/cokeke26/fenats/internal/shared/error"
	"github.com/cokeke26/fenats/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const importURL = "/api/v1/members/import"

// setupImportRouter wires the import endpoint behind a fake authenticated admin.
func setupImportRouter(t *testing.T, maxFileSize int64, authenticated bool) *gin.Engine {
	t.Helper()

	db := testutil.SetupTestDB(t)
	store := member.NewStore(db, member.NewMemberRepository())
	importHandler := importer.NewImportHandler(importer.NewImportService(store, testutil.SequentialTokens()), maxFileSize)

	router := testutil.SetupTestRouter()
	if authenticated {
		router.Use(testutil.WithAdmin(1, "admin@fenats.cl"))
	}
	router.POST(importURL, importHandler.Import)
	return router
}

func TestImportAPI_Success(t *testing.T) {
	// Given
	router := setupImportRouter(t, 1<<20, true)

	// When
	recorder := testutil.ExecuteMultipart(t, router, importURL,
		&testutil.MultipartFile{Field: "file", Filename: "nomina.csv", Content: []byte(nominaCSV)},
		map[string]string{"affiliate": "Sindicato Hospital", "source": "nomina marzo"},
	)

	// Then
	assert.Equal(t, http.StatusOK, recorder.Code)

	var result importer.Result
	testutil.ParseResponse(t, recorder, &result)
	assert.Equal(t, importer.Result{TotalRows: 3, Created: 3}, result)
}

func TestImportAPI_Errors(t *testing.T) {
	testCases := []struct {
		name          string
		maxFileSize   int64
		authenticated bool
		file          *testutil.MultipartFile
		fields        map[string]string
		status        int
		code          string
	}{
		{
			name:          "missing file",
			maxFileSize:   1 << 20,
			authenticated: true,
			fields:        map[string]string{"affiliate": "Sindicato"},
			status:        http.StatusBadRequest,
			code:          "IMPORT-003",
		},
		{
			name:          "file too large",
			maxFileSize:   16,
			authenticated: true,
			file:          &testutil.MultipartFile{Field: "file", Filename: "nomina.csv", Content: []byte(nominaCSV)},
			status:        http.StatusRequestEntityTooLarge,
			code:          "IMPORT-004",
		},
		{
			name:          "body over the hard limit",
			maxFileSize:   16,
			authenticated: true,
			file:          &testutil.MultipartFile{Field: "file", Filename: "nomina.csv", Content: bytes.Repeat([]byte("a;b\n"), 40<<10)},
			status:        http.StatusRequestEntityTooLarge,
			code:          "IMPORT-004",
		},
		{
			name:          "legacy xls",
			maxFileSize:   1 << 20,
			authenticated: true,
			file:          &testutil.MultipartFile{Field: "file", Filename: "nomina.xls", Content: []byte{0xD0, 0xCF, 0x11, 0xE0}},
			status:        http.StatusBadRequest,
			code:          "IMPORT-001",
		},
		{
			name:        "not authenticated",
			maxFileSize: 1 << 20,
			file:        &testutil.MultipartFile{Field: "file", Filename: "nomina.csv", Content: []byte(nominaCSV)},
			status:      http.StatusUnauthorized,
			code:        "AUTH-000",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := setupImportRouter(t, tc.maxFileSize, tc.authenticated)

			recorder := testutil.ExecuteMultipart(t, router, importURL, tc.file, tc.fields)

			assert.Equal(t, tc.status, recorder.Code)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.Equal(t, tc.code, errorResponse.Code)
			assert.NotEmpty(t, errorResponse.Message)
		})
	}
}
