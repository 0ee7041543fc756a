package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"screenhub.org/internal/audit"
	"screenhub.org/internal/notify"
	"screenhub.org/internal/registry"
	"screenhub.org/internal/session"
)

// Directory mutation rules: reads need any session, writes need manager or
// better, deletes need admin.

func storeErrStatus(err error) (int, string) {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, registry.ErrAlreadyExists):
		return http.StatusConflict, "already exists"
	case errors.Is(err, registry.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	}
	return http.StatusInternalServerError, "internal error"
}

func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := storeErrStatus(err)
	writeError(w, r, status, msg)
}

// ---- companies ----

type companyPayload struct {
	Name         string `json:"name"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

type companyView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ContactName  string    `json:"contact_name"`
	ContactEmail string    `json:"contact_email"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func viewCompany(c *registry.Company) companyView {
	return companyView{
		ID:           c.ID,
		Name:         c.Name,
		ContactName:  c.ContactName,
		ContactEmail: c.ContactEmail,
		Phone:        c.Phone,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (a *API) handleCompaniesCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		companies, err := a.registry.Companies(r.Context()).List(r.Context())
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		items := make([]companyView, 0, len(companies))
		for _, c := range companies {
			items = append(items, viewCompany(c))
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	case http.MethodPost:
		if _, ok := a.authorize(w, r, session.RoleManager); !ok {
			return
		}
		var req companyPayload
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeError(w, r, http.StatusBadRequest, "name is required")
			return
		}
		company := &registry.Company{
			Name:         strings.TrimSpace(req.Name),
			ContactName:  strings.TrimSpace(req.ContactName),
			ContactEmail: strings.TrimSpace(req.ContactEmail),
			Phone:        strings.TrimSpace(req.Phone),
		}
		if err := a.registry.Companies(r.Context()).Create(r.Context(), company); err != nil {
			writeStoreError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "company.created", map[string]any{"company_id": company.ID})
		writeJSON(w, http.StatusCreated, viewCompany(company))
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleCompanyResource(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(r.URL.Path, "/v1/companies/")
	if !ok {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	store := a.registry.Companies(r.Context())

	switch r.Method {
	case http.MethodGet:
		company, err := store.Find(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, viewCompany(company))
	case http.MethodPatch:
		if _, ok := a.authorize(w, r, session.RoleManager); !ok {
			return
		}
		company, err := store.Find(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		var req companyPayload
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
		if v := strings.TrimSpace(req.Name); v != "" {
			company.Name = v
		}
		if v := strings.TrimSpace(req.ContactName); v != "" {
			company.ContactName = v
		}
		if v := strings.TrimSpace(req.ContactEmail); v != "" {
			company.ContactEmail = v
		}
		if v := strings.TrimSpace(req.Phone); v != "" {
			company.Phone = v
		}
		if err := store.Update(r.Context(), company); err != nil {
			writeStoreError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "company.updated", map[string]any{"company_id": id})
		writeJSON(w, http.StatusOK, viewCompany(company))
	case http.MethodDelete:
		if _, ok := a.authorize(w, r, session.RoleAdmin); !ok {
			return
		}
		if err := store.Delete(r.Context(), id); err != nil {
			writeStoreError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "company.deleted", map[string]any{"company_id": id})
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPatch, http.MethodDelete)
	}
}

// ---- employees ----

type employeePayload struct {
	CompanyID int64      `json:"company_id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Position  string     `json:"position"`
	HiredAt   *time.Time `json:"hired_at"`
}

type employeeView struct {
	ID        int64      `json:"id"`
	CompanyID int64      `json:"company_id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Position  string     `json:"position"`
	HiredAt   *time.Time `json:"hired_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func viewEmployee(e *registry.Employee) employeeView {
	return employeeView{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		FullName:  e.FullName,
		Email:     e.Email,
		Position:  e.Position,
		HiredAt:   e.HiredAt,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (a *API) handleEmployeesCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		var (
			employees []*registry.Employee
			err       error
		)
		if companyID := parsePositiveInt(r.URL.Query().Get("company_id")); companyID > 0 {
			employees, err = a.registry.Employees(r.Context()).ListByCompany(r.Context(), companyID)
		} else {
			employees, err = a.registry.Employees(r.Context()).List(r.Context())
		}
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		items := make([]employeeView, 0, len(employees))
		for _, e := range employees {
			items = append(items, viewEmployee(e))
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	case http.MethodPost:
		if _, ok := a.authorize(w, r, session.RoleManager); !ok {
			return
		}
		var req employeePayload
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.CompanyID <= 0 || strings.TrimSpace(req.FullName) == "" {
			writeError(w, r, http.StatusBadRequest, "company_id and full_name are required")
			return
		}
		employee := &registry.Employee{
			CompanyID: req.CompanyID,
			FullName:  strings.TrimSpace(req.FullName),
			Email:     strings.TrimSpace(req.Email),
			Position:  strings.TrimSpace(req.Position),
			HiredAt:   req.HiredAt,
		}
		if err := a.registry.Employees(r.Context()).Create(r.Context(), employee); err != nil {
			writeStoreError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "employee.created", map[string]any{
			"employee_id": employee.ID,
			"company_id":  employee.CompanyID,
		})
		writeJSON(w, http.StatusCreated, viewEmployee(employee))
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleEmployeeResource(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(r.URL.Path, "/v1/employees/")
	if !ok {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	store := a.registry.Employees(r.Context())

	switch r.Method {
	case http.MethodGet:
		employee, err := store.Find(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, viewEmployee(employee))
	case http.MethodPatch:
		if _, ok := a.authorize(w, r, session.RoleManager); !ok {
			return
		}
		employee, err := store.Find(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		var req employeePayload
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.CompanyID > 0 {
			employee.CompanyID = req.CompanyID
		}
		if v := strings.TrimSpace(req.FullName); v != "" {
			employee.FullName = v
		}
		if v := strings.TrimSpace(req.Email); v != "" {
			employee.Email = v
		}
		if v := strings.TrimSpace(req.Position); v != "" {
			employee.Position = v
		}
		if req.HiredAt != nil {
			employee.HiredAt = req.HiredAt
		}
		if err := store.Update(r.Context(), employee); err != nil {
			writeStoreError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "employee.updated", map[string]any{"employee_id": id})
		writeJSON(w, http.StatusOK, viewEmployee(employee))
	case http.MethodDelete:
		if _, ok := a.authorize(w, r, session.RoleAdmin); !ok {
			return
		}
		if err := store.Delete(r.Context(), id); err != nil {
			writeStoreError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "employee.deleted", map[string]any{"employee_id": id})
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPatch, http.MethodDelete)
	}
}

// ---- health test catalog ----

type testPayload struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	ValidityMonths int    `json:"validity_months"`
}

type testView struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	ValidityMonths int       `json:"validity_months"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func viewTest(t *registry.HealthTest) testView {
	return testView{
		ID:             t.ID,
		Name:           t.Name,
		Description:    t.Description,
		ValidityMonths: t.ValidityMonths,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (a *API) handleTestsCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		tests, err := a.registry.Tests(r.Context()).List(r.Context())
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		items := make([]testView, 0, len(tests))
		for _, t := range tests {
			items = append(items, viewTest(t))
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	case http.MethodPost:
		if _, ok := a.authorize(w, r, session.RoleManager); !ok {
			return
		}
		var req testPayload
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeError(w, r, http.StatusBadRequest, "name is required")
			return
		}
		if req.ValidityMonths <= 0 {
			req.ValidityMonths = 12
		}
		test := &registry.HealthTest{
			Name:           strings.TrimSpace(req.Name),
			Description:    strings.TrimSpace(req.Description),
			ValidityMonths: req.ValidityMonths,
		}
		if err := a.registry.Tests(r.Context()).Create(r.Context(), test); err != nil {
			writeStoreError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "test.created", map[string]any{"test_id": test.ID})
		writeJSON(w, http.StatusCreated, viewTest(test))
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleTestResource(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(r.URL.Path, "/v1/tests/")
	if !ok {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	store := a.registry.Tests(r.Context())

	switch r.Method {
	case http.MethodGet:
		test, err := store.Find(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, viewTest(test))
	case http.MethodPatch:
		if _, ok := a.authorize(w, r, session.RoleManager); !ok {
			return
		}
		test, err := store.Find(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		var req testPayload
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
		if v := strings.TrimSpace(req.Name); v != "" {
			test.Name = v
		}
		if v := strings.TrimSpace(req.Description); v != "" {
			test.Description = v
		}
		if req.ValidityMonths > 0 {
			test.ValidityMonths = req.ValidityMonths
		}
		if err := store.Update(r.Context(), test); err != nil {
			writeStoreError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "test.updated", map[string]any{"test_id": id})
		writeJSON(w, http.StatusOK, viewTest(test))
	case http.MethodDelete:
		if _, ok := a.authorize(w, r, session.RoleAdmin); !ok {
			return
		}
		if err := store.Delete(r.Context(), id); err != nil {
			writeStoreError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "test.deleted", map[string]any{"test_id": id})
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPatch, http.MethodDelete)
	}
}

// ---- screenings ----

type screeningPayload struct {
	EmployeeID   int64      `json:"employee_id"`
	TestID       int64      `json:"test_id"`
	Status       string     `json:"status"`
	ScheduledFor *time.Time `json:"scheduled_for"`
	CompletedAt  *time.Time `json:"completed_at"`
	Result       string     `json:"result"`
	Notes        string     `json:"notes"`
}

type screeningView struct {
	ID           int64      `json:"id"`
	EmployeeID   int64      `json:"employee_id"`
	TestID       int64      `json:"test_id"`
	Status       string     `json:"status"`
	ScheduledFor *time.Time `json:"scheduled_for"`
	CompletedAt  *time.Time `json:"completed_at"`
	Result       string     `json:"result"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func viewScreening(s *registry.Screening) screeningView {
	return screeningView{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		TestID:       s.TestID,
		Status:       s.Status,
		ScheduledFor: s.ScheduledFor,
		CompletedAt:  s.CompletedAt,
		Result:       s.Result,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (a *API) handleScreeningsCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		var (
			screenings []*registry.Screening
			err        error
		)
		if employeeID := parsePositiveInt(r.URL.Query().Get("employee_id")); employeeID > 0 {
			screenings, err = a.registry.Screenings(r.Context()).ListByEmployee(r.Context(), employeeID)
		} else {
			screenings, err = a.registry.Screenings(r.Context()).List(r.Context())
		}
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		items := make([]screeningView, 0, len(screenings))
		for _, s := range screenings {
			items = append(items, viewScreening(s))
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	case http.MethodPost:
		if _, ok := a.authorize(w, r, session.RoleManager); !ok {
			return
		}
		var req screeningPayload
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.EmployeeID <= 0 || req.TestID <= 0 {
			writeError(w, r, http.StatusBadRequest, "employee_id and test_id are required")
			return
		}
		status := req.Status
		if status == "" {
			status = registry.ScreeningScheduled
		}
		if !registry.ValidScreeningStatus(status) {
			writeError(w, r, http.StatusBadRequest, "invalid status")
			return
		}
		screening := &registry.Screening{
			EmployeeID:   req.EmployeeID,
			TestID:       req.TestID,
			Status:       status,
			ScheduledFor: req.ScheduledFor,
			Result:       strings.TrimSpace(req.Result),
			Notes:        strings.TrimSpace(req.Notes),
		}
		if err := a.registry.Screenings(r.Context()).Create(r.Context(), screening); err != nil {
			writeStoreError(w, r, err)
			return
		}
		a.announceScreening(r, screening)
		audit.LogEvent(r.Context(), "screening.created", map[string]any{
			"screening_id": screening.ID,
			"employee_id":  screening.EmployeeID,
		})
		writeJSON(w, http.StatusCreated, viewScreening(screening))
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

// announceScreening records a panel notification for a freshly scheduled
// screening and pushes it to live stream subscribers. Failures are logged,
// never surfaced: the screening itself was already persisted.
func (a *API) announceScreening(r *http.Request, s *registry.Screening) {
	if s.Status != registry.ScreeningScheduled {
		return
	}
	title := "Screening scheduled"
	message := fmt.Sprintf("Screening #%d scheduled for employee #%d", s.ID, s.EmployeeID)
	if s.ScheduledFor != nil {
		message = fmt.Sprintf("%s on %s", message, s.ScheduledFor.Format("2006-01-02"))
	}
	n := notify.Notification{
		Type:         "screening_scheduled",
		Title:        title,
		Message:      message,
		ScreeningID:  &s.ID,
		EmployeeID:   &s.EmployeeID,
		ScheduledFor: s.ScheduledFor,
	}
	if err := a.notifications.Create(r.Context(), &n); err != nil {
		audit.LogEvent(r.Context(), "notification.create_failed", map[string]any{
			"screening_id": s.ID,
			"error":        err.Error(),
		})
		return
	}
	a.events.Publish(n)
}

func (a *API) handleScreeningResource(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(r.URL.Path, "/v1/screenings/")
	if !ok {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	store := a.registry.Screenings(r.Context())

	switch r.Method {
	case http.MethodGet:
		screening, err := store.Find(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, viewScreening(screening))
	case http.MethodPatch:
		if _, ok := a.authorize(w, r, session.RoleManager); !ok {
			return
		}
		screening, err := store.Find(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		var req screeningPayload
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Status != "" {
			if !registry.ValidScreeningStatus(req.Status) {
				writeError(w, r, http.StatusBadRequest, "invalid status")
				return
			}
			screening.Status = req.Status
		}
		if req.ScheduledFor != nil {
			screening.ScheduledFor = req.ScheduledFor
		}
		if req.CompletedAt != nil {
			screening.CompletedAt = req.CompletedAt
		}
		if v := strings.TrimSpace(req.Result); v != "" {
			screening.Result = v
		}
		if v := strings.TrimSpace(req.Notes); v != "" {
			screening.Notes = v
		}
		if err := store.Update(r.Context(), screening); err != nil {
			writeStoreError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "screening.updated", map[string]any{"screening_id": id})
		writeJSON(w, http.StatusOK, viewScreening(screening))
	case http.MethodDelete:
		if _, ok := a.authorize(w, r, session.RoleAdmin); !ok {
			return
		}
		if err := store.Delete(r.Context(), id); err != nil {
			writeStoreError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "screening.deleted", map[string]any{"screening_id": id})
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPatch, http.MethodDelete)
	}
}

// ---- documents ----

type documentPayload struct {
	EmployeeID  *int64 `json:"employee_id"`
	ScreeningID *int64 `json:"screening_id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

type documentView struct {
	ID          int64     `json:"id"`
	EmployeeID  *int64    `json:"employee_id"`
	ScreeningID *int64    `json:"screening_id"`
	Name        string    `json:"name"`
	StorageKey  string    `json:"storage_key"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

func viewDocument(d *registry.Document) documentView {
	return documentView{
		ID:          d.ID,
		EmployeeID:  d.EmployeeID,
		ScreeningID: d.ScreeningID,
		Name:        d.Name,
		StorageKey:  d.StorageKey,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		CreatedAt:   d.CreatedAt,
	}
}

func (a *API) handleDocumentsCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		docs, err := a.registry.Documents(r.Context()).List(r.Context())
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		items := make([]documentView, 0, len(docs))
		for _, d := range docs {
			items = append(items, viewDocument(d))
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	case http.MethodPost:
		if _, ok := a.authorize(w, r, session.RoleManager); !ok {
			return
		}
		var req documentPayload
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid request body")
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeError(w, r, http.StatusBadRequest, "name is required")
			return
		}
		contentType := strings.TrimSpace(req.ContentType)
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		doc := &registry.Document{
			EmployeeID:  req.EmployeeID,
			ScreeningID: req.ScreeningID,
			Name:        strings.TrimSpace(req.Name),
			StorageKey:  uuid.NewString(),
			ContentType: contentType,
			SizeBytes:   req.SizeBytes,
		}
		if err := a.registry.Documents(r.Context()).Create(r.Context(), doc); err != nil {
			writeStoreError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "document.created", map[string]any{"document_id": doc.ID})
		writeJSON(w, http.StatusCreated, viewDocument(doc))
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleDocumentResource(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(r.URL.Path, "/v1/documents/")
	if !ok {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}
	store := a.registry.Documents(r.Context())

	switch r.Method {
	case http.MethodGet:
		doc, err := store.Find(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, viewDocument(doc))
	case http.MethodDelete:
		if _, ok := a.authorize(w, r, session.RoleAdmin); !ok {
			return
		}
		if err := store.Delete(r.Context(), id); err != nil {
			writeStoreError(w, r, err)
			return
		}
		audit.LogEvent(r.Context(), "document.deleted", map[string]any{"document_id": id})
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodDelete)
	}
}
