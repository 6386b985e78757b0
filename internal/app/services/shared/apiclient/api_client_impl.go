package apiclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"medtrack-portal/internal/app/contracts"
	"medtrack-portal/internal/pkg/constvars"
	"medtrack-portal/internal/pkg/exceptions"
	"medtrack-portal/internal/pkg/utils"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxServerMessageLength = 300

type apiClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewAPIClient builds the MedTrack API client. limiter may be nil to
// disable outbound throttling.
func NewAPIClient(baseUrl string, timeout time.Duration, limiter *rate.Limiter, logger *zap.Logger) contracts.APIClient {
	return &apiClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    limiter,
		Log:        logger,
	}
}

func (c *apiClient) Do(ctx context.Context, method, path string, body, out interface{}) error {
	requestID := utils.GetRequestIDFromContext(ctx)
	c.Log.Debug("apiClient.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, path),
	)

	if c.Limiter != nil {
		err := c.Limiter.Wait(ctx)
		if err != nil {
			c.Log.Error("apiClient.Do outbound rate limiter wait failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrOutboundRateLimit(err)
		}
	}

	var requestBody io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("apiClient.Do error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrCannotMarshalJSON(err)
		}
		requestBody = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, requestBody)
	if err != nil {
		c.Log.Error("apiClient.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}

	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if token := utils.GetAPITokenFromContext(ctx); token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("apiClient.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("apiClient.Do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrReadResponseBody(err)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		serverMessage := extractServerMessage(bodyBytes)
		c.Log.Warn("apiClient.Do API responded with error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String("server_message", serverMessage),
		)
		return exceptions.ErrAPIResponse(resp.StatusCode, serverMessage, method, path)
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	err = json.Unmarshal(bodyBytes, out)
	if err != nil {
		c.Log.Error("apiClient.Do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, path)
	}

	c.Log.Debug("apiClient.Do succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return nil
}

// extractServerMessage reads the human readable part of an error body. The
// API answers either with plain text or with a JSON object carrying
// "message" or "error".
func extractServerMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	switch trimmed[0] {
	case '{':
		var payload map[string]interface{}
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return ""
		}
		for _, key := range []string{"message", "error"} {
			if message, ok := payload[key].(string); ok && strings.TrimSpace(message) != "" {
				return truncate(strings.TrimSpace(message))
			}
		}
		return ""
	case '"':
		var message string
		if err := json.Unmarshal(trimmed, &message); err != nil {
			return ""
		}
		return truncate(strings.TrimSpace(message))
	case '<', '[':
		return ""
	}
	return truncate(string(trimmed))
}

// truncate cuts message to at most maxServerMessageLength bytes without
// splitting a rune.
func truncate(message string) string {
	if len(message) <= maxServerMessageLength {
		return message
	}
	cut := maxServerMessageLength
	for cut > 0 && !utf8.RuneStart(message[cut]) {
		cut--
	}
	return message[:cut]
}
