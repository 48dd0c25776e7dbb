package listclient

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/SystemBuilders/strlist/internal/listservice"
	"github.com/oklog/ulid"
)

var _ Config = (*SimpleConfig)(nil)

// SimpleConfig implements Config.
type SimpleConfig struct {
	IPAddr   string
	PortAddr string
}

// IP returns the IP from SimpleConfig.
func (scfg *SimpleConfig) IP() string {
	return scfg.IPAddr
}

// Port returns the port from SimpleConfig.
func (scfg *SimpleConfig) Port() string {
	return scfg.PortAddr
}

// NewSimpleConfig returns a new simple configuration.
func NewSimpleConfig(IPAddr, PortAddr string) *SimpleConfig {
	return &SimpleConfig{
		IPAddr:   IPAddr,
		PortAddr: PortAddr,
	}
}

var _ Client = (*SimpleClient)(nil)

// SimpleClient implements Client, the listclient for strlist.
type SimpleClient struct {
	config Config
	http   *http.Client
}

// NewSimpleClient returns a new SimpleClient talking to the server
// described by the config.
func NewSimpleClient(config Config) *SimpleClient {
	return &SimpleClient{
		config: config,
		http:   http.DefaultClient,
	}
}

// Create makes a HTTP call to the listserver and creates a list.
func (sc *SimpleClient) Create() (ulid.ULID, error) {
	var res listservice.CreateRes
	if err := sc.do(http.MethodPost, "/lists", nil, http.StatusCreated, &res); err != nil {
		return ulid.ULID{}, err
	}
	return ulid.Parse(res.ID)
}

// Insert makes a HTTP call to the listserver and inserts the value.
func (sc *SimpleClient) Insert(id ulid.ULID, value string) error {
	return sc.do(http.MethodPost, listPath(id)+"/insert", &listservice.ValueRequest{Value: value}, http.StatusOK, nil)
}

// Find makes a HTTP call to the listserver and looks the value up.
func (sc *SimpleClient) Find(id ulid.ULID, value string) (bool, error) {
	var res listservice.FindRes
	err := sc.do(http.MethodPost, listPath(id)+"/find", &listservice.ValueRequest{Value: value}, http.StatusOK, &res)
	return res.Found, err
}

// Delete makes a HTTP call to the listserver and deletes the value.
func (sc *SimpleClient) Delete(id ulid.ULID, value string) (bool, error) {
	var res listservice.DeleteRes
	err := sc.do(http.MethodPost, listPath(id)+"/delete", &listservice.ValueRequest{Value: value}, http.StatusOK, &res)
	return res.Deleted, err
}

// Contents makes a HTTP call to the listserver and fetches the list.
func (sc *SimpleClient) Contents(id ulid.ULID) ([]string, string, error) {
	var res listservice.ContentsRes
	err := sc.do(http.MethodGet, listPath(id), nil, http.StatusOK, &res)
	return res.Values, res.Rendered, err
}

// Destroy makes a HTTP call to the listserver and destroys the list.
func (sc *SimpleClient) Destroy(id ulid.ULID) error {
	return sc.do(http.MethodDelete, listPath(id), nil, http.StatusOK, nil)
}

func (sc *SimpleClient) do(method, path string, req interface{}, want int, res interface{}) error {
	var body io.Reader
	if req != nil {
		byteData, err := json.Marshal(req)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(byteData)
	}

	endPoint := sc.config.IP() + ":" + sc.config.Port() + path
	r, err := http.NewRequest(method, endPoint, body)
	if err != nil {
		return err
	}
	r.Header.Set("Content-Type", "application/json")

	resp, err := sc.http.Do(r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != want {
		return statusError(resp.StatusCode, bytes.TrimSpace(respBody))
	}
	if res == nil {
		return nil
	}
	return json.Unmarshal(respBody, res)
}

func listPath(id ulid.ULID) string {
	return "/lists/" + id.String()
}
