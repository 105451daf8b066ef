package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

// Runner fires scenarios at Handler. When Events is set, each scenario's
// ExpectedEvents are checked against what the request fired.
type Runner struct {
	Handler http.Handler
	Events  *EventRecorder
}

// Run executes the single scenario in the file at path.
func Run(t *testing.T, handler http.Handler, path string) {
	t.Helper()
	s, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Run(s.Name, func(t *testing.T) {
		Runner{Handler: handler}.Do(t, s)
	})
}

// RunFlow executes the scenarios in the array file at path in order.
func RunFlow(t *testing.T, handler http.Handler, path string) {
	t.Helper()
	Runner{Handler: handler}.RunFlow(t, path)
}

// RunDir runs every *.json file in dir as a subtest. Each file gets a fresh
// Runner from newRunner, so flows never see each other's writes.
func RunDir(t *testing.T, newRunner func() Runner, dir string) {
	t.Helper()

	entries, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(entries) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}

	for _, path := range entries {
		name := strings.TrimSuffix(filepath.Base(path), ".json")
		t.Run(name, func(t *testing.T) {
			r := newRunner()
			isFlow, err := IsArray(path)
			if err != nil {
				t.Fatal(err)
			}
			if isFlow {
				r.RunFlow(t, path)
				return
			}
			s, err := LoadScenario(path)
			if err != nil {
				t.Fatal(err)
			}
			r.Do(t, s)
		})
	}
}

// RunFlow executes the scenarios in the array file at path in order. A
// failing step stops the flow.
func (r Runner) RunFlow(t *testing.T, path string) {
	t.Helper()

	scenarios, err := LoadScenarioArray(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range scenarios {
		if !t.Run(s.Name, func(t *testing.T) { r.Do(t, s) }) {
			return
		}
	}
}

// Do fires s and asserts the status, headers, body and events.
func (r Runner) Do(t *testing.T, s *Scenario) *httptest.ResponseRecorder {
	t.Helper()

	body, err := s.RequestBody()
	if err != nil {
		t.Fatalf("[%s] read request body: %v", s.Name, err)
	}
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req := httptest.NewRequest(strings.ToUpper(s.RequestMethod), s.RequestURL, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range s.Headers {
		req.Header.Set(k, v)
	}

	if r.Events != nil {
		r.Events.Reset()
	}

	rec := httptest.NewRecorder()
	r.Handler.ServeHTTP(rec, req)

	AssertStatusCode(t, s, rec.Code)
	AssertHeaders(t, s, rec.Header())

	expected, err := s.ExpectedBody()
	if err != nil {
		t.Errorf("[%s] read expected body: %v", s.Name, err)
	} else if len(expected) > 0 {
		AssertJSONBody(t, s, expected, rec.Body.Bytes())
	}

	if r.Events != nil && s.ExpectedEvents != nil {
		AssertEvents(t, s, r.Events.Names())
	}
	return rec
}
