package testkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode checks the response code with testify.
func AssertStatusCode(t *testing.T, s *Scenario, got int) {
	t.Helper()
	assert.Equal(t, s.ExpectedCode, got, "[%s] HTTP status code mismatch", s.Name)
}

// AssertHeaders checks every header listed in ExpectedHeaders.
func AssertHeaders(t *testing.T, s *Scenario, got http.Header) {
	t.Helper()
	for k, v := range s.ExpectedHeaders {
		assert.Equal(t, v, got.Get(k), "[%s] header %s mismatch", s.Name, k)
	}
}

// AssertJSONBody compares both bodies after decoding, so key order and
// whitespace never matter. IgnoreFields are stripped from both first.
func AssertJSONBody(t *testing.T, s *Scenario, expected, actual []byte) {
	t.Helper()

	var expVal, actVal any
	require.NoError(t, json.Unmarshal(expected, &expVal),
		"[%s] expected response is not valid JSON", s.Name)
	if !assert.NoError(t, json.Unmarshal(actual, &actVal),
		"[%s] actual response is not valid JSON\nbody: %s", s.Name, string(actual)) {
		return
	}

	for _, path := range s.IgnoreFields {
		segments := strings.Split(path, ".")
		strip(expVal, segments)
		strip(actVal, segments)
	}

	assert.Equal(t, expVal, actVal, "[%s] response body mismatch", s.Name)
}

// AssertEvents checks the fired event names against ExpectedEvents.
func AssertEvents(t *testing.T, s *Scenario, got []string) {
	t.Helper()
	want := s.ExpectedEvents
	if len(want) == 0 {
		want = nil
	}
	assert.Equal(t, want, got, "[%s] fired events mismatch", s.Name)
}

// strip deletes the value at path inside v.
func strip(v any, path []string) {
	if len(path) == 0 {
		return
	}
	head, rest := path[0], path[1:]

	switch node := v.(type) {
	case map[string]any:
		if len(rest) == 0 {
			delete(node, head)
			return
		}
		strip(node[head], rest)
	case []any:
		if head != "*" {
			return
		}
		for _, item := range node {
			strip(item, rest)
		}
	}
}
