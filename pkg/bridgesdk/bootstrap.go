package bridgesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Bootstrap initializes the protocol with an admin account and fee
// configuration. One-time only; subsequent calls fail with a conflict.
func (c *SDKClient) Bootstrap(
	ctx context.Context,
	token string,
	req BootstrapRequest,
) (*BootstrapResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/bootstrap",
		bytes.NewReader(body),
		map[string]string{
			"Content-Type":      "application/json",
			"X-Bootstrap-Token": token,
		},
	)
	if err != nil {
		return nil, err
	}

	var bootstrapResp BootstrapResponse
	if err := decodeJSON(resp, &bootstrapResp, http.StatusCreated); err != nil {
		return nil, err
	}

	return &bootstrapResp, nil
}
