package remoteapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/tmerlos/ciriaqui/core"
)

// Client calls the remote record-keeping API that owns all absence,
// teacher and subject data. This app never persists anything locally.
type Client struct {
	http        *http.Client
	absencesURL string
	teachersURL string
	subjectsURL string
}

func NewClient() *Client {
	return &Client{
		http:        &http.Client{Timeout: core.Conf.Remote.Timeout},
		absencesURL: strings.TrimRight(core.Conf.Remote.AbsencesURL, "/"),
		teachersURL: strings.TrimRight(core.Conf.Remote.TeachersURL, "/"),
		subjectsURL: strings.TrimRight(core.Conf.Remote.SubjectsURL, "/"),
	}
}

// do performs one request against the remote service and returns the
// response status. When out is non-nil and the status is 200, the response
// body is decoded into it. A transport or decode failure is reported as a
// status-0 RemoteError; interpreting non-OK statuses is left to the caller.
func (c *Client) do(op, method, url string, payload, out interface{}) (int, error) {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return 0, errors.Wrapf(err, "%s: encoding payload", op)
		}
	}

	req, err := http.NewRequest(method, url, &body)
	if err != nil {
		return 0, errors.Wrapf(err, "%s: building request", op)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return 0, core.NewRemoteError(op, 0, err)
	}
	defer res.Body.Close()

	if out != nil && res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return 0, core.NewRemoteError(op, 0, errors.Wrap(err, "decoding response"))
		}
		return res.StatusCode, nil
	}

	_, _ = io.Copy(io.Discard, res.Body)
	return res.StatusCode, nil
}

// get fetches url into out, treating anything but a 200 as a RemoteError.
func (c *Client) get(op, url string, out interface{}) error {
	status, err := c.do(op, http.MethodGet, url, nil, out)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return core.NewRemoteError(op, status, nil)
	}
	return nil
}
