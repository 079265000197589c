package handler

import "net/http"

type ContextKey string

var (
	RequestIDCtxKey ContextKey = "requestID"
)

func requestIDFrom(r *http.Request) string {
	if id, ok := r.Context().Value(RequestIDCtxKey).(string); ok {
		return id
	}
	return ""
}
