package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_booking/internal/app"
	"hotel_booking/internal/domain"
)

type Handlers struct {
	B         *app.BookingService
	Q         *app.QueryService
	Customers *app.CustomerDirectory
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/customers", h.registerCustomer)
	s.mux.Get("/v1/customers/{name}/summary", h.customerSummary)
	s.mux.Get("/v1/rooms", h.availableRooms)
	s.mux.Get("/v1/rooms/{number}/quote", h.quote)
	s.mux.Post("/v1/bookings", h.book)
	s.mux.Delete("/v1/bookings/{number}", h.cancel)
	s.mux.Get("/v1/bookings/log", h.bookingLog)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeDomainErr maps the domain's error classes onto HTTP statuses.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeProblem(w, http.StatusBadRequest, "Invalid Input", err.Error())
	case errors.Is(err, domain.ErrInvalidState):
		writeProblem(w, http.StatusConflict, "Conflict", err.Error())
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func (h *Handlers) registerCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string  `json:"name"`
		Budget float64 `json:"budget"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be JSON with name and budget")
		return
	}
	c, err := h.Customers.Register(req.Name, req.Budget)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Name          string  `json:"name"`
		Budget        float64 `json:"budget"`
		LoyaltyPoints int     `json:"loyalty_points"`
	}{c.Name, c.Budget, c.LoyaltyPoints})
}

func (h *Handlers) customerSummary(w http.ResponseWriter, r *http.Request) {
	c, err := h.Customers.Get(chi.URLParam(r, "name"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	summary, err := h.B.Summary(c)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(summary)); err != nil {
		log.Error().Err(err).Msg("failed to write summary body")
	}
}

func (h *Handlers) availableRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Q.AvailableRooms(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *Handlers) quote(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Number", "room number must be an integer")
		return
	}
	nights, err := strconv.Atoi(r.URL.Query().Get("nights"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Nights", "nights must be an integer")
		return
	}
	view, err := h.Q.Quote(r.Context(), number, nights)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) book(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Customer   string `json:"customer"`
		RoomNumber int    `json:"room_number"`
		Nights     int    `json:"nights"`
		Guests     int    `json:"guests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be JSON with customer, room_number, nights and guests")
		return
	}
	c, err := h.Customers.Get(req.Customer)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	res, err := h.B.Book(r.Context(), c, req.RoomNumber, req.Nights, req.Guests)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	type bookingResponse struct {
		Booked     bool    `json:"booked"`
		Reason     string  `json:"reason,omitempty"`
		RoomNumber int     `json:"room_number"`
		Total      float64 `json:"total,omitempty"`
		Season     string  `json:"season,omitempty"`
	}
	if !res.Booked {
		writeJSON(w, http.StatusConflict, bookingResponse{
			Booked:     false,
			Reason:     string(res.Reason),
			RoomNumber: req.RoomNumber,
		})
		return
	}
	writeJSON(w, http.StatusCreated, bookingResponse{
		Booked:     true,
		RoomNumber: res.Entry.RoomNumber,
		Total:      res.Entry.TotalPrice,
		Season:     string(res.Entry.Season),
	})
}

func (h *Handlers) cancel(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Number", "room number must be an integer")
		return
	}
	c, err := h.Customers.Get(r.URL.Query().Get("customer"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if err := h.B.Cancel(r.Context(), c, number); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) bookingLog(w http.ResponseWriter, r *http.Request) {
	entries := h.B.BookingLog()

	etag, body := calcETagAndBody(entries)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write booking log body")
	}
}
