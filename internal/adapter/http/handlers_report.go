package adapthttp

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"healthtracker/internal/adapter/export"
	"healthtracker/internal/domain"
)

func (s *Server) handleUserReport(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, domain.Invalid("invalid user id %q", chi.URLParam(r, "userID")))
		return
	}

	q := r.URL.Query()
	start, err := domain.ParseDay(q.Get("start"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	end, err := domain.ParseDay(q.Get("end"))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	format := export.FormatJSON
	if v := q.Get("format"); v != "" {
		if format, err = export.ParseFormat(v); err != nil {
			writeDomainError(w, r, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	if _, err := s.users.Get(ctx, userID); err != nil {
		writeDomainError(w, r, fmt.Errorf("user %d: %w", userID, err))
		return
	}

	report, err := s.reports.Generate(ctx, userID, start, end)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, *report); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if format == export.FormatCSV || format == export.FormatPDF {
		name := "report-" + strconv.FormatInt(userID, 10) + "-" + domain.FormatDay(start) + "-" + domain.FormatDay(end) + "." + string(format)
		w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
