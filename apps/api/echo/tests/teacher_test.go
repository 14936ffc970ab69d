package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	. "github.com/tmerlos/ciriaqui/apps/api/echo"
	"github.com/tmerlos/ciriaqui/core/absence"
	"github.com/tmerlos/ciriaqui/core/subject"
	"github.com/tmerlos/ciriaqui/core/teacher"
	testutil "github.com/tmerlos/ciriaqui/tests"
)

func TestTeacherLogin(t *testing.T) {
	app, db := setup(t)
	tchr := testutil.SeedTeacher(db, "Ana Gomez", "ana@test.test", "s3cret")

	tests := []httpTest{
		{
			name: "missing credentials", method: http.MethodPost, path: "/ciriaqui/api/teachers/login",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"error":"validation failed","fields":{"email":"this field is required","password":"this field is required"}}`),
		},
		{
			name: "unknown email", method: http.MethodPost, path: "/ciriaqui/api/teachers/login",
			body:     []byte(`{"email":"nobody@test.test","password":"s3cret"}`),
			wantCode: http.StatusBadRequest, wantData: []byte(`{"error":"authentication failed"}`),
		},
		{
			name: "wrong password", method: http.MethodPost, path: "/ciriaqui/api/teachers/login",
			body:     []byte(`{"email":"ana@test.test","password":"nope-nope"}`),
			wantCode: http.StatusBadRequest, wantData: []byte(`{"error":"authentication failed"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("valid credentials", func(t *testing.T) {
		// email case does not matter
		req, rec := newRequest(http.MethodPost, "/ciriaqui/api/teachers/login",
			[]byte(`{"email":"Ana@Test.test","password":"s3cret"}`))
		app.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("code = %v, want %v; body %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		var resp LoginResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp.Token == "" {
			t.Error("response carries no token")
		}
		if resp.Teacher != tchr {
			t.Errorf("teacher = %+v, want %+v", resp.Teacher, tchr)
		}

		// the issued token opens protected routes
		req, rec = newAuthRequest(http.MethodGet, "/ciriaqui/api/teachers/me", resp.Token)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, tchr),
		}, rec)
	})
}

func TestTeacherSearch(t *testing.T) {
	app, db := setup(t)
	ana := testutil.SeedTeacher(db, "Ana Gomez", "ana@test.test", "s3cret")
	mariana := testutil.SeedTeacher(db, "Mariana Ruiz", "mariana@test.test", "s3cret")
	testutil.SeedTeacher(db, "Benito Diaz", "benito@test.test", "s3cret")
	token := getToken(t, ana)

	tests := []httpTest{
		{
			name: "unauthenticated", method: http.MethodGet, path: "/ciriaqui/api/teachers?search=ana",
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken),
		},
		{
			name: "best match first", method: http.MethodGet, path: "/ciriaqui/api/teachers?search=ana",
			token:    token,
			wantCode: http.StatusOK, wantData: marchallObj(t, []teacher.Teacher{ana, mariana}),
		},
		{
			name: "blank term", method: http.MethodGet, path: "/ciriaqui/api/teachers?search=",
			token:    token,
			wantCode: http.StatusOK, wantData: []byte(`[]`),
		},
		{
			name: "no match", method: http.MethodGet, path: "/ciriaqui/api/teachers?search=zzz",
			token:    token,
			wantCode: http.StatusOK, wantData: []byte(`[]`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func TestSubjectSearch(t *testing.T) {
	app, db := setup(t)
	tchr := testutil.SeedTeacher(db, "Ana Gomez", "ana@test.test", "s3cret")
	maths := testutil.SeedSubject(db, "Mathematics")
	testutil.SeedSubject(db, "History")
	token := getToken(t, tchr)

	tt := httpTest{
		name: "match", method: http.MethodGet, path: "/ciriaqui/api/subjects?search=math",
		token:    token,
		wantCode: http.StatusOK, wantData: marchallObj(t, []subject.Subject{maths}),
	}
	req, rec := newAuthRequest(tt.method, tt.path, tt.token)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}

func TestSubjectAbsences(t *testing.T) {
	app, db := setup(t)
	tchr := testutil.SeedTeacher(db, "Ana Gomez", "ana@test.test", "s3cret")
	maths := testutil.SeedSubject(db, "Mathematics")
	a := testutil.SeedAbsence(t, db, tchr, absence.KindExam, "2021-03-05", "2021-03-08", maths.ID)
	testutil.SeedAbsence(t, db, tchr, absence.KindMoving, "2021-04-01", "2021-04-01", 0)
	token := getToken(t, tchr)

	tt := httpTest{
		name: "scoped to subject", method: http.MethodGet,
		path:     "/ciriaqui/api/subjects/" + itoa(maths.ID) + "/absences",
		token:    token,
		wantCode: http.StatusOK, wantData: marchallObj(t, []absence.Absence{a}),
	}
	req, rec := newAuthRequest(tt.method, tt.path, tt.token)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}
