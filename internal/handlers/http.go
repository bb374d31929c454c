package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/syemed/intake/internal/model"
	"github.com/syemed/intake/internal/service"
)

// maxUploadBytes caps a single multipart file before it is read into memory.
const maxUploadBytes = 50 << 20

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type session struct {
	Token        string `json:"accessToken"`
	ExpiresAt    int64  `json:"expiresAt"`
	RefreshToken string `json:"refreshToken"`
}

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=4,max=24"`
}

type logout struct {
	RefreshToken string `json:"refreshToken" validate:"required,uuid"`
}

type newAgent struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type login struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Fingerprint string `json:"fingerprint" validate:"required"`
}

type refresh struct {
	Fingerprint  string `json:"fingerprint" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required,uuid"`
}

// AuthHTTPHandler is http handler for auth endpoint
type AuthHTTPHandler struct {
	authSvc service.AuthService
}

// NewAuthHTTPHandler builds new AuthHTTPHandler
func NewAuthHTTPHandler(authSvc service.AuthService) *AuthHTTPHandler {
	return &AuthHTTPHandler{
		authSvc: authSvc,
	}
}

// Signup signups new agent
// @Summary     Signup new agent account
// @Description Register new agent account based on provided credentials
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       signup body	    signup true "New agent data"
// @Success     200    {object} newAgent
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/auth/signup [post]
func (h *AuthHTTPHandler) Signup(c echo.Context) error {
	var su signup
	if err := c.Bind(&su); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&su); err != nil {
		return err
	}

	agent, err := h.authSvc.Signup(c.Request().Context(), su.Email, su.Name, su.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &newAgent{
		ID:    agent.ID,
		Email: agent.Email,
		Name:  agent.Name,
	})
}

// Login logins agent
// @Summary     Login agent
// @Description Verifies provided credentials, sign auth and refresh token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       login  body	    login true "Agent credentials"
// @Success     200    {object} session
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/auth/login [post]
func (h *AuthHTTPHandler) Login(c echo.Context) error {
	var lgn login
	if err := c.Bind(&lgn); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgn); err != nil {
		return err
	}

	jwt, rfrToken, err := h.authSvc.Login(c.Request().Context(), lgn.Email, lgn.Password, lgn.Fingerprint, time.Now().UTC())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &session{
		Token:        jwt.Signed,
		ExpiresAt:    jwt.ExpiresAt,
		RefreshToken: rfrToken.ID,
	})
}

// Logout logouts agent
// @Summary     Logout agent
// @Description Remove any agent-related session data
// @Tags        auth
// @Accept      json
// @Param       logout body	    logout true "Refresh token id"
// @Success     200    "Successful status code"
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/auth/logout [post]
func (h *AuthHTTPHandler) Logout(c echo.Context) error {
	var lgt logout
	if err := c.Bind(&lgt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgt); err != nil {
		return err
	}

	if err := h.authSvc.Logout(c.Request().Context(), lgt.RefreshToken); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// Refresh refreshes agent session
// @Summary     Refresh auth
// @Description Sign new auth and refresh token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       refresh body	 refresh true "Fingerprint and refresh token id"
// @Success     200     {object} session
// @Failure     400     {object} echo.HTTPError
// @Failure     500     {object} echo.HTTPError
// @Router      /api/auth/refresh [post]
func (h *AuthHTTPHandler) Refresh(c echo.Context) error {
	var r refresh
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&r); err != nil {
		return err
	}

	jwt, rfrToken, err := h.authSvc.Refresh(c.Request().Context(), r.RefreshToken, r.Fingerprint, time.Now().UTC())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &session{
		Token:        jwt.Signed,
		ExpiresAt:    jwt.ExpiresAt,
		RefreshToken: rfrToken.ID,
	})
}

type newCustomer struct {
	Type        model.CustomerType `json:"tipo_cliente" validate:"required,oneof=Paciente Distribuidor Institución"`
	TradeName   *string            `json:"nombre_fantasia" validate:"required_if=Type Distribuidor"`
	LegalName   *string            `json:"razon_social"`
	FullName    *string            `json:"nombre_apellido" validate:"required_if=Type Paciente"`
	TaxID       string             `json:"cuit_dni"`
	Phone       string             `json:"telefono"`
	Address     string             `json:"direccion"`
	Email       string             `json:"email" validate:"omitempty,email"`
	ContactName string             `json:"contacto_nombre"`
	Agent       string             `json:"comercial"`
}

type taxIDCheck struct {
	Exists bool `json:"existe"`
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// Search searches customers ranked by relevance
// @Summary     Search customers
// @Description Returns customers matching the query, ordered by relevance for the requesting agent
// @Tags        customers
// @Produce     json
// @Param       q         query    string true  "Search text, at least 2 characters"
// @Param       tipo      query    string false "Customer type filter"
// @Param       comercial query    string false "Agent name, boosts their assigned customers"
// @Param       limite    query    int    false "Maximum number of matches, defaults to 15"
// @Success     200       {array}  model.CustomerMatch
// @Failure     400       {object} echo.HTTPError
// @Failure     500       {object} echo.HTTPError
// @Router      /api/v1/customers [get]
// @Router      /api/v2/customers [get]
func (h *CustomerHTTPHandler) Search(c echo.Context) error {
	var limit int
	if raw := c.QueryParam("limite"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limite must be a number")
		}
		limit = parsed
	}

	matches, err := h.customerSvc.Search(c.Request().Context(), c.QueryParam("q"), c.QueryParam("tipo"), c.QueryParam("comercial"), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, matches)
}

// Exists checks CUIT/DNI uniqueness
// @Summary     Check CUIT/DNI existence
// @Description Tells whether a customer with the normalized CUIT/DNI is already registered
// @Tags        customers
// @Produce     json
// @Param       cuit   query    string true "CUIT or DNI, formatting characters are ignored"
// @Success     200    {object} taxIDCheck
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/customers/exists [get]
// @Router      /api/v2/customers/exists [get]
func (h *CustomerHTTPHandler) Exists(c echo.Context) error {
	exists, err := h.customerSvc.Exists(c.Request().Context(), c.QueryParam("cuit"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &taxIDCheck{Exists: exists})
}

// Post creates new customer
// @Summary     New customer
// @Description Creates new customer, the requesting agent becomes its first assigned agent
// @Tags        customers
// @Accept		json
// @Produce     json
// @Param 		newCustomer body	 newCustomer true "Data for new customer"
// @Success     201    		{object} model.Customer
// @Failure     400    		{object} echo.HTTPError
// @Failure     409    		{object} echo.HTTPError
// @Failure     500    		{object} echo.HTTPError
// @Router      /api/v1/customers [post]
// @Router      /api/v2/customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var nc newCustomer
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), model.NewCustomerInput{
		Type:        nc.Type,
		TradeName:   nc.TradeName,
		LegalName:   nc.LegalName,
		FullName:    nc.FullName,
		TaxID:       nc.TaxID,
		Phone:       nc.Phone,
		Address:     nc.Address,
		Email:       nc.Email,
		ContactName: nc.ContactName,
	}, nc.Agent)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, customer)
}

// Get gets customer
// @Summary     Get single customer by id
// @Description Returns single customer with provided id
// @Tags        customers
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	int true "Customer id"
// @Success     200    {object} model.Customer
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/customers/{id} [get]
// @Router      /api/v2/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "customer id must be a number")
	}

	customer, err := h.customerSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if customer == nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("customer %d doesn't exist", id))
	}

	return c.JSON(http.StatusOK, customer)
}

// RequestHTTPHandler is http handler for service request endpoint
type RequestHTTPHandler struct {
	requestSvc service.RequestService
}

// NewRequestHTTPHandler builds new RequestHTTPHandler
func NewRequestHTTPHandler(requestSvc service.RequestService) *RequestHTTPHandler {
	return &RequestHTTPHandler{requestSvc: requestSvc}
}

// Submit accepts a service request submission
// @Summary     Submit service request
// @Description Validates and persists a service request, assigns one service order per equipment and stores the attached files
// @Tags        requests
// @Accept		mpfd
// @Produce     json
// @Param       datos     formData string true  "Submission payload as JSON"
// @Param       falla_1   formData file   false "Failure evidence for equipment 1, repeatable per equipment"
// @Param       factura_1 formData file   false "Invoice for equipment 1, repeatable per equipment"
// @Param       adjuntos  formData file   false "General attachments"
// @Success     201       {object} model.SubmissionReceipt
// @Failure     400       {object} echo.HTTPError
// @Failure     413       {object} echo.HTTPError
// @Failure     422       {object} validation.PayloadError
// @Failure     429       {object} echo.HTTPError
// @Failure     500       {object} echo.HTTPError
// @Router      /api/v1/requests [post]
func (h *RequestHTTPHandler) Submit(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payload := c.FormValue("datos")
	if payload == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "form field datos is required")
	}

	var sub model.Submission
	if err := json.Unmarshal([]byte(payload), &sub); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("malformed datos payload - %v", err))
	}

	uploads, err := collectUploads(form)
	if err != nil {
		return err
	}

	receipt, err := h.requestSvc.Submit(c.Request().Context(), &sub, uploads, time.Now().UTC())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, receipt)
}

// Get gets service request
// @Summary     Get single service request by id
// @Description Returns single service request with its equipment and attachments
// @Tags        requests
// @Security	ApiKeyAuth
// @Produce     json
// @Param       id     path 	int true "Service request id"
// @Success     200    {object} model.ServiceRequest
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/requests/{id} [get]
func (h *RequestHTTPHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "request id must be a number")
	}

	req, err := h.requestSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	if req == nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("request %d doesn't exist", id))
	}

	return c.JSON(http.StatusOK, req)
}

// Export exports all service requests
// @Summary     Export service requests
// @Description Returns an xlsx workbook with every service request, one row per equipment
// @Tags        requests
// @Security	ApiKeyAuth
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success     200    {string} file
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/requests/export [get]
func (h *RequestHTTPHandler) Export(c echo.Context) error {
	workbook, err := h.requestSvc.Export(c.Request().Context())
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="solicitudes.xlsx"`)
	return c.Blob(http.StatusOK, xlsxContentType, workbook)
}

// Catalog returns the form option lists
// @Summary     Form catalog
// @Description Returns the option lists the submission form renders
// @Tags        requests
// @Produce     json
// @Success     200    {object} model.Catalog
// @Router      /api/v1/requests/catalog [get]
func (h *RequestHTTPHandler) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, model.FormCatalog())
}

// collectUploads turns the multipart file parts into service uploads. Field
// names falla_N and factura_N bind the file to equipment N, anything else is
// a general attachment.
func collectUploads(form *multipart.Form) ([]service.Upload, error) {
	uploads := make([]service.Upload, 0)
	for field, headers := range form.File {
		category, ordinal := uploadPart(field)
		for _, hdr := range headers {
			if hdr.Size > maxUploadBytes {
				return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, fmt.Sprintf("el archivo %s supera el tamaño máximo permitido", hdr.Filename))
			}

			content, err := readUpload(hdr)
			if err != nil {
				return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to read file %s - %v", hdr.Filename, err))
			}

			uploads = append(uploads, service.Upload{
				FieldName:        field,
				FileName:         hdr.Filename,
				ContentType:      hdr.Header.Get("Content-Type"),
				Content:          content,
				Category:         category,
				EquipmentOrdinal: ordinal,
			})
		}
	}
	return uploads, nil
}

func uploadPart(field string) (model.AttachmentCategory, int) {
	switch {
	case strings.HasPrefix(field, "falla_"):
		return model.AttachmentCategoryFailure, partOrdinal(strings.TrimPrefix(field, "falla_"))
	case strings.HasPrefix(field, "factura_"):
		return model.AttachmentCategoryInvoice, partOrdinal(strings.TrimPrefix(field, "factura_"))
	default:
		return model.AttachmentCategoryGeneral, 0
	}
}

func partOrdinal(suffix string) int {
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func readUpload(hdr *multipart.FileHeader) ([]byte, error) {
	file, err := hdr.Open()
	if err != nil {
		return nil, err
	}

	content, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	if err := file.Close(); err != nil {
		return nil, err
	}
	return content, nil
}
