package web

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"finman/ledger"
	"finman/report"
)

// writeJSONResponse writes a JSON response to the http.ResponseWriter.
// If encoding fails, it writes an error response.
func writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// AccountInfo lists one account's name and record counts.
type AccountInfo struct {
	Name     string `json:"name"`
	Incomes  int    `json:"incomes"`
	Expenses int    `json:"expenses"`
	Budgets  int    `json:"budgets"`
}

// AccountsResponse is the JSON response structure for the accounts endpoint.
type AccountsResponse struct {
	Accounts []AccountInfo `json:"accounts"`
}

// handleListAccounts handles GET requests to /api/accounts.
// Returns all accounts sorted alphabetically by name.
func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]AccountInfo, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, AccountInfo{
			Name:     a.Name,
			Incomes:  len(a.Incomes),
			Expenses: len(a.Expenses),
			Budgets:  len(a.Budgets),
		})
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})

	writeJSONResponse(w, &AccountsResponse{Accounts: accounts})
}

// handleSummary handles GET requests to /api/accounts/{name}/summary.
//
// Query parameters:
//   - month: Restrict to a month (1-12). Optional.
//   - year: Restrict to a year. Optional.
//
// Omitting both returns the all-time summary; either may be given alone.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	account, ok := s.findAccount(w, r)
	if !ok {
		return
	}

	month, ok := queryInt(w, r, "month")
	if !ok {
		return
	}
	year, ok := queryInt(w, r, "year")
	if !ok {
		return
	}
	if month != 0 && (month < 1 || month > 12) {
		http.Error(w, "month must be between 1 and 12", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	summary := report.BuildSummary(r.Context(), account, ledger.Filter{Month: month, Year: year})
	s.mu.RUnlock()

	writeJSONResponse(w, summary)
}

// handleMonthly handles GET requests to /api/accounts/{name}/monthly.
// Both month and year query parameters are required.
func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	account, ok := s.findAccount(w, r)
	if !ok {
		return
	}

	month, ok := queryInt(w, r, "month")
	if !ok {
		return
	}
	year, ok := queryInt(w, r, "year")
	if !ok {
		return
	}
	if month < 1 || month > 12 {
		http.Error(w, "month must be between 1 and 12", http.StatusBadRequest)
		return
	}
	if year == 0 {
		http.Error(w, "year is required", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	overview := report.BuildMonthly(r.Context(), account, month, year)
	s.mu.RUnlock()

	writeJSONResponse(w, overview)
}

// handleYearly handles GET requests to /api/accounts/{name}/yearly.
// The year query parameter is required.
func (s *Server) handleYearly(w http.ResponseWriter, r *http.Request) {
	account, ok := s.findAccount(w, r)
	if !ok {
		return
	}

	year, ok := queryInt(w, r, "year")
	if !ok {
		return
	}
	if year == 0 {
		http.Error(w, "year is required", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	overview := report.BuildYearly(r.Context(), account, year)
	s.mu.RUnlock()

	writeJSONResponse(w, overview)
}

// findAccount resolves the {name} path value against the loaded set, writing
// a 404 when absent.
func (s *Server) findAccount(w http.ResponseWriter, r *http.Request) (*ledger.Account, bool) {
	name := r.PathValue("name")

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.accounts {
		if a.Name == name {
			return a, true
		}
	}
	http.Error(w, "account not found: "+name, http.StatusNotFound)
	return nil, false
}

// queryInt parses an optional integer query parameter, writing a 400 on
// malformed input. Absent parameters yield zero.
func queryInt(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "invalid "+key+": "+raw, http.StatusBadRequest)
		return 0, false
	}
	return v, true
}
