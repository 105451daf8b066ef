// Package testkit drives HTTP API tests from declarative scenarios.
//
// A scenario describes one request and what must come back:
//
//	{
//	  "name": "create dish without name",
//	  "requestMethod": "POST",
//	  "requestUrl": "/dishes",
//	  "body": {"data": {"description": "d", "price": 1, "image_url": "u"}},
//	  "expectedCode": 400,
//	  "response": {"error": "A 'name' property is required."}
//	}
//
// A file holding a JSON array is a flow: its scenarios run in order against
// the same handler, so later steps see the effects of earlier ones.
//
//	func TestAPI(t *testing.T) {
//	    testkit.RunFlow(t, handler, "testdata/orders_flow.json")
//	}
package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Scenario describes a single request and its expected response.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	RequestMethod   string            `json:"requestMethod"`
	RequestURL      string            `json:"requestUrl"`
	RequestFileName string            `json:"requestFileName"` // request body file, relative to the scenario
	Body            json.RawMessage   `json:"body"`            // inline request body, used when RequestFileName is empty
	Headers         map[string]string `json:"headers"`

	ExpectedCode       int               `json:"expectedCode"`
	ExpectedStatusCode int               `json:"expectedStatusCode"` // alias for ExpectedCode
	ExpectedHeaders    map[string]string `json:"expectedHeaders"`
	ResponseFileName   string            `json:"responseFileName"`
	Response           json.RawMessage   `json:"response"` // inline expected body

	// IgnoreFields lists dotted paths removed from both bodies before they
	// are compared, e.g. "data.id". A "*" segment matches every array item.
	IgnoreFields []string `json:"ignoreFields"`

	// ExpectedEvents lists domain events the request must fire, in order.
	ExpectedEvents []string `json:"expectedEvents"`

	dir string
}

// LoadScenario reads and validates a scenario from a JSON file.
func LoadScenario(path string) (*Scenario, error) {
	abs, data, err := read(path)
	if err != nil {
		return nil, err
	}

	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}
	s.dir = filepath.Dir(abs)
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("testkit: invalid scenario %q: %w", abs, err)
	}
	return &s, nil
}

// LoadScenarioArray reads a flow: an ordered array of scenarios.
func LoadScenarioArray(path string) ([]*Scenario, error) {
	abs, data, err := read(path)
	if err != nil {
		return nil, err
	}

	var scenarios []*Scenario
	if err := json.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("testkit: parse scenario array %q: %w", abs, err)
	}

	dir := filepath.Dir(abs)
	for i, s := range scenarios {
		s.dir = dir
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("testkit: invalid scenario %d in %q: %w", i, abs, err)
		}
	}
	return scenarios, nil
}

// IsArray reports whether the file at path holds a JSON array.
func IsArray(path string) (bool, error) {
	_, data, err := read(path)
	if err != nil {
		return false, err
	}
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")), nil
}

func read(path string) (string, []byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return "", nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}
	return abs, data, nil
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.RequestURL == "" {
		return fmt.Errorf("requestUrl is required")
	}
	if s.ExpectedCode == 0 {
		s.ExpectedCode = s.ExpectedStatusCode
	}
	if s.ExpectedCode == 0 {
		return fmt.Errorf("expectedCode is required")
	}
	if s.RequestMethod == "" {
		s.RequestMethod = "GET"
	}
	return nil
}

// RequestBody returns the request body, from RequestFileName or Body.
func (s *Scenario) RequestBody() ([]byte, error) {
	if p := s.resolve(s.RequestFileName); p != "" {
		return os.ReadFile(p)
	}
	return s.Body, nil
}

// ExpectedBody returns the expected response, from ResponseFileName or
// Response. Nil means the body is not checked.
func (s *Scenario) ExpectedBody() ([]byte, error) {
	if p := s.resolve(s.ResponseFileName); p != "" {
		return os.ReadFile(p)
	}
	return s.Response, nil
}

func (s *Scenario) resolve(name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}
