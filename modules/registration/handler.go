package registration

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cykrypt/registration/pkg/binder"
	"github.com/cykrypt/registration/pkg/logger"
	regsvc "github.com/cykrypt/registration/svc/registration"
)

type handler struct {
	svc  Submitter
	bind func(r *http.Request, v any) error
	log  *slog.Logger
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.Ready(); err != nil {
		h.log.ErrorContext(ctx, "notification sink not configured", logger.Error(err))
		writeError(w, http.StatusInternalServerError, MsgNotConfigured)
		return
	}

	var p regsvc.Payload
	if err := h.bind(r, &p); err != nil {
		h.log.WarnContext(ctx, "invalid registration payload", logger.Error(err))
		status, msg := bindStatus(err)
		writeError(w, status, msg)
		return
	}

	if _, err := h.svc.Submit(ctx, p.Registration()); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Success: true})
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if fields := regsvc.FieldErrors(err); fields != nil {
		writeJSON(w, http.StatusBadRequest, Response{Error: MsgValidation, FieldErrors: fields})
		return
	}

	switch {
	case errors.Is(err, regsvc.ErrSubmittedTooFast):
		writeError(w, http.StatusBadRequest, MsgTooFast)
	case errors.Is(err, regsvc.ErrNotConfigured):
		writeError(w, http.StatusInternalServerError, MsgNotConfigured)
	default:
		h.log.ErrorContext(r.Context(), "registration failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, MsgSubmitFailed)
	}
}

// bindStatus maps body decoding failures. Malformed JSON is answered like any
// other server-side failure.
func bindStatus(err error) (int, string) {
	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, MsgRequestTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, MsgInvalidRequest
	default:
		return http.StatusInternalServerError, MsgSubmitFailed
	}
}
