package bridgesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// EnrollTOTP starts TOTP enrolment for the caller's account. The returned
// secret and provisioning URL feed an authenticator app; TOTP activates only
// after VerifyTOTP succeeds with a generated code.
// Requires bridge:write scope.
func (s *Session) EnrollTOTP(ctx context.Context) (*TOTPEnrollResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/auth/totp/enroll",
		nil, nil, "bridge:write")
	if err != nil {
		return nil, err
	}

	var enroll TOTPEnrollResponse
	if err := decodeJSON(resp, &enroll, http.StatusOK); err != nil {
		return nil, err
	}

	return &enroll, nil
}

// VerifyTOTP confirms enrolment with a code from the authenticator app and
// enables TOTP on the account. Subsequent token exchanges require a code.
// Requires bridge:write scope.
func (s *Session) VerifyTOTP(ctx context.Context, code string) error {
	body, err := json.Marshal(TOTPVerifyRequest{Code: code})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/auth/totp/verify",
		bytes.NewReader(body),
		map[string]string{"Content-Type": "application/json"},
		"bridge:write",
	)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
