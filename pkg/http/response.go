package xhttp

import "encoding/json"

// Envelope is the success wrapper every JSON endpoint responds with.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorBody is the error wrapper: message text plus the HTTP code echoed
// in the body, matching what the frontend toasts expect.
type ErrorBody struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func WriteData(ctx *RequestCtx, status int, v any) {
	writeRaw(ctx, status, Envelope{Success: true, Data: v})
}

func WriteError(ctx *RequestCtx, status int, msg string) {
	writeRaw(ctx, status, ErrorBody{Message: msg, Code: status})
}

func writeRaw(ctx *RequestCtx, status int, v any) {
	b, _ := json.Marshal(v)
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func ReadJSON(ctx *RequestCtx, dst any) error {
	return json.Unmarshal(ctx.PostBody(), dst)
}
