package validator

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/backend/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
	Setup()
}

func postForm(t *testing.T, form url.Values, dst interface{}) map[string]string {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return BindForm(c, dst)
}

func TestBindFormStudentLogin(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		wantFields []string
	}{
		{name: "valid", form: url.Values{"name": {"Ada"}, "student_id": {"S1"}}},
		{name: "missing both", form: url.Values{}, wantFields: []string{"name", "student_id"}},
		{name: "blank name", form: url.Values{"name": {"   "}, "student_id": {"S1"}}, wantFields: []string{"name"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req model.StudentLoginRequest
			fields := postForm(t, tt.form, &req)
			if len(tt.wantFields) == 0 {
				if fields != nil {
					t.Fatalf("unexpected errors: %v", fields)
				}
				return
			}
			for _, f := range tt.wantFields {
				if _, ok := fields[f]; !ok {
					t.Errorf("missing error for %q in %v", f, fields)
				}
			}
		})
	}
}

func TestBlankMessageIsTranslated(t *testing.T) {
	var req model.StudentLoginRequest
	fields := postForm(t, url.Values{"name": {" "}, "student_id": {"S1"}}, &req)
	if got := fields["name"]; got != "name must not be blank" {
		t.Errorf("message = %q", got)
	}
}

func TestBindQueryCourseFilter(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/search?dept=csci&number=1&open_only=true", nil)

	var f model.CourseFilter
	if fields := BindQuery(c, &f); fields != nil {
		t.Fatalf("unexpected errors: %v", fields)
	}
	if f.Dept != "csci" || f.Number != "1" || !f.OpenOnly {
		t.Errorf("unexpected filter: %+v", f)
	}

	c.Request = httptest.NewRequest(http.MethodGet, "/search?number=abc", nil)
	var bad model.CourseFilter
	if fields := BindQuery(c, &bad); fields["number"] == "" {
		t.Errorf("expected number error, got %v", fields)
	}
}
