package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"authkit/pkg/authclient/metrics"
	"authkit/pkg/platform/tracer"
	"authkit/pkg/requestcontext"
)

const (
	headerAccept        = "Accept"
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"
	headerUserAgent     = "User-Agent"

	contentTypeJSON = "application/json"
)

// call describes one request to the auth service.
type call struct {
	op     string
	method string
	// route is the path template used for spans; path is the concrete path.
	route string
	path  string
	body  any
	// bearer is sent as "Authorization: Bearer <bearer>" when set.
	bearer string
	// acceptJSON forces Accept and Content-Type to application/json.
	acceptJSON bool
}

// do executes cl and decodes a 2xx body into out. A nil out discards the body.
func (c *AuthClient) do(ctx context.Context, cl call, out any) (err error) {
	start := time.Now()
	requestID := requestcontext.RequestID(ctx)
	statusCode := 0

	ctx, span := c.tracer.Start(ctx, tracer.SpanName(cl.op), tracer.CallAttributes(cl.method, cl.route, requestID)...)
	defer func() {
		span.SetAttributes(
			tracer.Int(tracer.AttrHTTPStatusCode, statusCode),
			tracer.Duration(tracer.AttrDurationMs, time.Since(start)),
		)
		span.End(err)
		if c.metrics != nil {
			c.metrics.ObserveRequest(cl.op, callOutcome(statusCode, err), start)
		}
		c.logCall(ctx, cl, requestID, statusCode, start, err)
	}()

	var reqBody io.Reader
	if cl.body != nil {
		payload, marshalErr := json.Marshal(cl.body)
		if marshalErr != nil {
			return c.newError(cl, CodeEncode, marshalErr)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, reqBody)
	if err != nil {
		return c.newError(cl, CodeTransport, err)
	}

	if cl.body != nil || cl.acceptJSON {
		req.Header.Set(headerContentType, contentTypeJSON)
	}
	if cl.acceptJSON {
		req.Header.Set(headerAccept, contentTypeJSON)
	}
	if cl.bearer != "" {
		req.Header.Set(headerAuthorization, "Bearer "+cl.bearer)
	}
	if requestID != "" {
		req.Header.Set(headerRequestID, requestID)
	}
	req.Header.Set(headerUserAgent, c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return c.newError(cl, CodeTransport, err)
	}
	defer resp.Body.Close()

	statusCode = resp.StatusCode
	span.AddEvent(tracer.EventResponseReceived, tracer.Int(tracer.AttrHTTPStatusCode, statusCode))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		e := c.newError(cl, CodeTransport, err)
		e.StatusCode = statusCode
		return e
	}

	if statusCode < 200 || statusCode > 299 {
		e := c.newError(cl, CodeStatus, nil)
		e.StatusCode = statusCode
		e.Body = respBody
		return e
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		e := c.newError(cl, CodeDecode, err)
		e.StatusCode = statusCode
		e.Body = respBody
		return e
	}
	return nil
}

// callOutcome labels a finished call. Encode and decode failures get their own
// labels so they are never counted as a status class.
func callOutcome(statusCode int, err error) string {
	switch {
	case HasCode(err, CodeEncode):
		return metrics.OutcomeEncodeError
	case HasCode(err, CodeDecode):
		return metrics.OutcomeDecodeError
	default:
		return metrics.Outcome(statusCode)
	}
}

func (c *AuthClient) newError(cl call, code Code, err error) *Error {
	return &Error{
		Code:   code,
		Op:     cl.op,
		Method: cl.method,
		Path:   cl.path,
		Err:    err,
	}
}

// logCall never logs request bodies: they carry passwords and tokens.
func (c *AuthClient) logCall(ctx context.Context, cl call, requestID string, statusCode int, start time.Time, err error) {
	args := []any{
		"operation", cl.op,
		"method", cl.method,
		"route", cl.route,
		"status", statusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if requestID != "" {
		args = append(args, "request_id", requestID)
	}
	if err != nil {
		c.logger.WarnContext(ctx, "auth service call failed", append(args, "error", err)...)
		return
	}
	c.logger.DebugContext(ctx, "auth service call", args...)
}
