package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamform/teamform/internal/api/handler"
)

func newAssignHandler() *handler.AssignHandler {
	return handler.NewAssignHandler(newEngine(), []string{".tsv"}, 1<<20, handler.NewRandSource(7))
}

func TestAssign_Success(t *testing.T) {
	content := tsvHeader +
		"1\t2024-01-01 10:00:00\ta@example.com\ta1, a2, a3, a4, a5\t" + fullRanking() + "\n" +
		"2\t2024-01-01 09:00:00\tb@example.com\tb1, b2, b3, b4, b5\t" + fullRanking() + "\n" +
		"3\t2024-01-01 11:00:00\tc@example.com\tc1, c2, c3\t1 2 3\n"

	req := uploadRequest(t, "file", "submissions.tsv", []byte(content))
	w := httptest.NewRecorder()

	newAssignHandler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	env := parseEnvelope(t, w)
	assert.Nil(t, env["error"])

	data := env["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["rows_processed"])
	assert.Equal(t, handler.SuccessDetail, data["detail"])

	result := data["result"].(map[string]interface{})
	valid := result["valid_teams"].([]interface{})
	require.Len(t, valid, 2)
	first := valid[0].(map[string]interface{})
	assert.Equal(t, "1", first["assigned_project"])
	assert.Equal(t, "01.01.2024 09:00:00", first["submission_time"])
	second := valid[1].(map[string]interface{})
	assert.Equal(t, "2", second["assigned_project"])

	invalid := result["invalid_teams"].([]interface{})
	require.Len(t, invalid, 1)
	members := invalid[0].(map[string]interface{})["team_members"].([]interface{})
	assert.Len(t, members, 3)

	assert.Empty(t, result["other_teams"])
	assert.Empty(t, result["unassigned_students"])

	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, float64(13), summary["participants_mentioned"])
	assert.Equal(t, true, summary["unique_projects"])
}

func TestAssign_ExtensionIsCaseInsensitive(t *testing.T) {
	content := tsvHeader + "1\t2024-01-01 10:00:00\ta@example.com\ta1\t1\n"
	req := uploadRequest(t, "file", "SUBMISSIONS.TSV", []byte(content))
	w := httptest.NewRecorder()

	newAssignHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssign_WrongExtension(t *testing.T) {
	req := uploadRequest(t, "file", "submissions.csv", []byte("a,b\n"))
	w := httptest.NewRecorder()

	newAssignHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
	details := errObj["details"].([]interface{})
	require.Len(t, details, 1)
	assert.Equal(t, "file", details[0].(map[string]interface{})["field"])
}

func TestAssign_MissingFile(t *testing.T) {
	req := uploadRequest(t, "", "", nil)
	w := httptest.NewRecorder()

	newAssignHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := parseEnvelope(t, w)
	assert.Equal(t, "MISSING_FILE", env["error"].(map[string]interface{})["code"])
}

func TestAssign_NotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/student-projects/assign", nil)
	w := httptest.NewRecorder()

	newAssignHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssign_RowValidationFailure(t *testing.T) {
	content := tsvHeader +
		"1\t2024-01-01 10:00:00\ta@example.com\ta1\t1\n" +
		"2\t2024-01-01 10:00:00\tnot-an-email\tb1\t1\n"
	req := uploadRequest(t, "file", "submissions.tsv", []byte(content))
	w := httptest.NewRecorder()

	newAssignHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := parseEnvelope(t, w)
	assert.Nil(t, env["data"])

	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_ROWS", errObj["code"])

	report := errObj["details"].(map[string]interface{})
	assert.Equal(t, false, report["ok"])
	assert.Equal(t, float64(2), report["rows_total"])
	assert.Equal(t, float64(1), report["rows_invalid"])
	assert.Equal(t, true, report["skipped_header"])

	errs := report["errors"].([]interface{})
	require.Len(t, errs, 1)
	rowErr := errs[0].(map[string]interface{})
	assert.Equal(t, float64(3), rowErr["line"])
	assert.Equal(t, float64(3), rowErr["column"])
	assert.Equal(t, "email", rowErr["field"])
	assert.Equal(t, "not-an-email", rowErr["value"])
}

func TestAssign_EmptyFile(t *testing.T) {
	req := uploadRequest(t, "file", "submissions.tsv", []byte{})
	w := httptest.NewRecorder()

	newAssignHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := parseEnvelope(t, w)
	report := env["error"].(map[string]interface{})["details"].(map[string]interface{})
	errs := report["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.Equal(t, "file is empty", errs[0].(map[string]interface{})["message"])
}

func TestAssign_UndecodableFile(t *testing.T) {
	req := uploadRequest(t, "file", "submissions.tsv", []byte{0xC3, 0x28, 0x00})
	w := httptest.NewRecorder()

	newAssignHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := parseEnvelope(t, w)
	errObj := env["error"].(map[string]interface{})
	assert.Equal(t, "PROCESSING_FAILED", errObj["code"])
	assert.Contains(t, errObj["message"], "failed to process file:")
}

func TestAssign_SeededSourceIsRepeatable(t *testing.T) {
	content := tsvHeader +
		"1\t2024-01-01 10:00:00\ta@example.com\ta1,a2,a3,a4,a5,a6,a7\t1 2 3\n" +
		"2\t2024-01-01 10:00:00\tb@example.com\tb1,b2\t4 5 6\n" +
		"3\t2024-01-01 10:00:00\tc@example.com\tc1,c2,c3,c4,c5,c6\t7\n"

	h := newAssignHandler()
	results := make([]interface{}, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, uploadRequest(t, "file", "s.tsv", []byte(content)))
		require.Equal(t, http.StatusOK, w.Code)
		results = append(results, parseEnvelope(t, w)["data"].(map[string]interface{})["result"])
	}

	assert.Equal(t, results[0], results[1])
}
