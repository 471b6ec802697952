package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"ticket-claimer/internal/model"
)

// StatusSource exposes what the poller has done so far.
type StatusSource interface {
	Last() *model.CycleResult
	Cycles() int64
}

type statusResponse struct {
	Cycles    int64              `json:"cycles"`
	LastCycle *model.CycleResult `json:"last_cycle"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// New serves GET /health and GET /status.
func New(src StatusSource) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		switch string(ctx.Path()) {
		case "/health":
			writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		case "/status":
			writeJSON(ctx, fasthttp.StatusOK, statusResponse{
				Cycles:    src.Cycles(),
				LastCycle: src.Last(),
			})
		default:
			writeError(ctx, fasthttp.StatusNotFound, "Not found")
		}
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encoding failed: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	b, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}
