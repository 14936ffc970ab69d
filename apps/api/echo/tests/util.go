package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	. "github.com/tmerlos/ciriaqui/apps/api/echo"
	"github.com/tmerlos/ciriaqui/core"
	"github.com/tmerlos/ciriaqui/core/absence"
	"github.com/tmerlos/ciriaqui/core/subject"
	"github.com/tmerlos/ciriaqui/core/teacher"
	emailsvc "github.com/tmerlos/ciriaqui/services/email"
	dummyapi "github.com/tmerlos/ciriaqui/storage/remote/dummy"
	testutil "github.com/tmerlos/ciriaqui/tests"
)

var errMissingToken = httpErr{Error: "teacher not authenticated"}

func setup(t *testing.T) (*Server, *dummyapi.DB) {
	core.Conf.TestMode = true

	db := dummyapi.NewDB()

	mailSvc := emailsvc.NewConsoleServiceMock()
	absenceSvc := absence.NewService(dummyapi.NewAbsenceRepository(db), mailSvc)
	teacherSvc := teacher.NewService(dummyapi.NewTeacherRepository(db))
	subjectSvc := subject.NewService(dummyapi.NewSubjectRepository(db))

	validate := validator.New()
	enLocale := en.New()
	trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	core.InitValidators(validate, trans)
	absence.InitValidators(validate, trans)

	return NewServer(&Options{
		DisableReqLogs: true,
		Logger:         testutil.Logger{T: t},
		AbsenceSvc:     absenceSvc,
		TeacherSvc:     teacherSvc,
		SubjectSvc:     subjectSvc,
		Validate:       validate,
		Translator:     trans,
	}), db
}

type httpErr struct {
	Error string `json:"error"`
	Retry bool   `json:"retry,omitempty"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func getToken(t *testing.T, tchr teacher.Teacher) string {
	token, err := GenerateToken(GetTeacherClaims(tchr))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
