// Package words reaches the external dictionary API used to decide whether a
// submitted word is a real dictionary entry. The session treats any failure
// here as "word does not exist", so this client only has to report honestly.
package words

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public dictionary endpoint; a word is looked up as
// GET {base}/{word}.
const DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Client implements game.Lexicon against a dictionaryapi.dev-style endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a dictionary client. An empty baseURL falls back to
// DefaultBaseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Exists reports whether the dictionary has at least one entry for word.
// A 404 is a definitive "no"; any other non-200 status or transport failure
// is returned as an error for the caller to fail closed on.
func (c *Client) Exists(ctx context.Context, word string) (bool, error) {
	u := c.baseURL + "/" + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, fmt.Errorf("building dictionary request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("word", word).Msg("dictionary lookup failed")
		return false, fmt.Errorf("dictionary lookup: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var entries []json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
			log.Warn().Err(err).Str("word", word).Msg("dictionary response undecodable")
			return false, fmt.Errorf("decoding dictionary response: %w", err)
		}
		return len(entries) > 0, nil
	case http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return false, nil
	default:
		io.Copy(io.Discard, resp.Body)
		log.Warn().Int("status", resp.StatusCode).Str("word", word).Msg("dictionary returned unexpected status")
		return false, fmt.Errorf("dictionary returned status %d", resp.StatusCode)
	}
}
