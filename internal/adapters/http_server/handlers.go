// internal/adapters/http_server/handlers.go
package httpserver

import (
	"embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"tripbuddy/internal/app"
	"tripbuddy/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type Handlers struct{ P *app.PlanService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.form)
	s.mux.Post("/plan", h.plan)
	s.mux.Post("/plan/report", h.report)
	s.mux.Post("/v1/plans", h.planJSON)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// ---- view models ----

type formView struct {
	Warning    string
	Categories []string
	MinBudget  float64

	// sticky values on re-render
	Destination string
	Budget      string
	Days        string
}

type costRow struct {
	Category string
	Cost     float64
}

type planView struct {
	Plan     domain.TripPlan
	FoodType string
	Rows     []costRow
	Slices   []pieSlice
}

func costRows(p domain.TripPlan) []costRow {
	return []costRow{
		{"Hotel", float64(p.HotelCost * p.Days)},
		{"Food", float64(p.FoodCost * p.Days)},
		{"Transport", float64(p.Transport)},
		{"Shopping & Tours", p.Shopping},
	}
}

// ---- handlers ----

func (h *Handlers) form(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, formView{})
}

func (h *Handlers) renderForm(w http.ResponseWriter, v formView) {
	v.Categories = domain.Categories
	v.MinBudget = h.P.MinBudget()
	if err := pages.ExecuteTemplate(w, "form.html", v); err != nil {
		log.Error().Err(err).Msg("render form failed")
	}
}

func parsePlanForm(r *http.Request) (domain.PlanRequest, error) {
	if err := r.ParseForm(); err != nil {
		return domain.PlanRequest{}, err
	}
	budget, _ := strconv.ParseFloat(r.PostFormValue("budget"), 64)
	days, _ := strconv.Atoi(r.PostFormValue("days"))
	return domain.PlanRequest{
		Destination: strings.TrimSpace(r.PostFormValue("destination")),
		Budget:      budget,
		Days:        days,
		Preferences: r.PostForm["preferences"],
		FoodType:    r.PostFormValue("food_type"),
	}, nil
}

func (h *Handlers) plan(w http.ResponseWriter, r *http.Request) {
	req, err := parsePlanForm(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "malformed form")
		return
	}

	// invalid input re-renders the form with a warning; no scrape happens
	if err := h.P.Validate(req); err != nil {
		h.renderForm(w, formView{
			Warning:     warningFor(err),
			Destination: req.Destination,
			Budget:      r.PostFormValue("budget"),
			Days:        r.PostFormValue("days"),
		})
		return
	}

	plan, err := h.P.GeneratePlan(r.Context(), req)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Plan Failed", err.Error())
		return
	}

	rows := costRows(plan)
	v := planView{Plan: plan, FoodType: req.FoodType, Rows: rows, Slices: pieSlices(rows)}
	if err := pages.ExecuteTemplate(w, "plan.html", v); err != nil {
		log.Error().Err(err).Msg("render plan failed")
	}
}

func warningFor(err error) string {
	switch {
	case err == nil:
		return ""
	case err == app.ErrNoDestination:
		return "Please enter a valid destination."
	default:
		return err.Error()
	}
}

// report replays the drawn cost values carried in hidden form fields and
// serves them as the downloadable CSV. Nothing is stored server-side, so the
// numbers come back from the rendered plan page itself.
func (h *Handlers) report(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "malformed form")
		return
	}
	dest := strings.TrimSpace(r.PostFormValue("destination"))
	if dest == "" {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "destination is required")
		return
	}
	days, _ := strconv.Atoi(r.PostFormValue("days"))
	hotel, _ := strconv.Atoi(r.PostFormValue("hotel_cost"))
	food, _ := strconv.Atoi(r.PostFormValue("food_cost"))
	transport, _ := strconv.Atoi(r.PostFormValue("transport"))
	shopping, _ := strconv.ParseFloat(r.PostFormValue("shopping"), 64)

	rows := costRows(domain.TripPlan{
		Days: days, HotelCost: hotel, FoodCost: food, Transport: transport, Shopping: shopping,
	})

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dest+"_trip_report.csv"))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Category", "Cost (₹)"})
	for _, row := range rows {
		_ = cw.Write([]string{row.Category, strconv.FormatFloat(row.Cost, 'f', 2, 64)})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Error().Err(err).Msg("write CSV report failed")
	}
}

func (h *Handlers) planJSON(w http.ResponseWriter, r *http.Request) {
	var req domain.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	req.Destination = strings.TrimSpace(req.Destination)

	if err := h.P.Validate(req); err != nil {
		writeProblem(w, http.StatusUnprocessableEntity, "Invalid Plan Request", err.Error())
		return
	}

	plan, err := h.P.GeneratePlan(r.Context(), req)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Plan Failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(plan); err != nil {
		log.Error().Err(err).Msg("write plan JSON failed")
	}
}
