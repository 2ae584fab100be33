package storefrontserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "github.com/Apurer/huerto-store/internal/domains/cart/application"
	catalogmapper "github.com/Apurer/huerto-store/internal/domains/catalog/adapters/http/mapper"
	catalogapp "github.com/Apurer/huerto-store/internal/domains/catalog/application"
	catalogdomain "github.com/Apurer/huerto-store/internal/domains/catalog/domain"
	customersapp "github.com/Apurer/huerto-store/internal/domains/customers/application"
	ordersapp "github.com/Apurer/huerto-store/internal/domains/orders/application"
	sessionsapp "github.com/Apurer/huerto-store/internal/domains/sessions/application"
	"github.com/Apurer/huerto-store/internal/platform/localstore"
	"github.com/Apurer/huerto-store/internal/shared/editor"
	apierrors "github.com/Apurer/huerto-store/internal/shared/errors"
	"github.com/Apurer/huerto-store/internal/shared/table"
)

type harness struct {
	router   *gin.Engine
	handlers ApiHandleFunctions
	catalog  *catalogapp.Service
	cart     *cartapp.Service
	sessions *sessionsapp.Service
}

type staticLookups struct {
	categories []catalogdomain.Lookup
	countries  []catalogdomain.Lookup
}

func (s staticLookups) Categories() []catalogdomain.Lookup { return s.categories }
func (s staticLookups) Countries() []catalogdomain.Lookup  { return s.countries }

func newHarness(t *testing.T, lookups LookupSource) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := localstore.NewMemory()
	catalog := catalogapp.NewService(store)
	customers := customersapp.NewService(store)
	orders := ordersapp.NewService(store)
	cart := cartapp.NewService(store, catalog)
	var issued int
	sessions := sessionsapp.NewService(store,
		sessionsapp.WithTokenGenerator(func() string {
			issued++
			return "token-" + strconv.Itoa(issued)
		}),
		sessionsapp.WithRevokeHook(catalog.DropEditor),
		sessionsapp.WithRevokeHook(customers.DropEditor),
	)
	formatter := table.NewFormatter(table.DefaultLocale)

	handlers := ApiHandleFunctions{
		StorefrontAPI:     NewStorefrontAPI(catalog, cart, lookups),
		CartAPI:           NewCartAPI(cart, formatter),
		SessionAPI:        NewSessionAPI(sessions),
		AdminProductsAPI:  NewAdminProductsAPI(catalog, lookups, formatter),
		AdminCustomersAPI: NewAdminCustomersAPI(customers),
		AdminOrdersAPI:    NewAdminOrdersAPI(orders, formatter),
		RequireSession:    RequireSession(sessions),
	}
	return &harness{
		router:   NewRouterWithGinEngine(gin.New(), handlers),
		handlers: handlers,
		catalog:  catalog,
		cart:     cart,
		sessions: sessions,
	}
}

func (h *harness) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func (h *harness) login(t *testing.T) string {
	t.Helper()
	rec := h.do(t, http.MethodPost, "/api/session", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decode[SessionToken](t, rec).Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func requireProblem(t *testing.T, rec *httptest.ResponseRecorder, status int, problemType string) apierrors.ProblemDetail {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	require.Equal(t, apierrors.ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
	problem := decode[apierrors.ProblemDetail](t, rec)
	require.Equal(t, problemType, problem.Type)
	return problem
}

func rowKeys(tbl table.Table) []string {
	keys := make([]string, 0, len(tbl.Rows))
	for _, r := range tbl.Rows {
		keys = append(keys, r.Key)
	}
	return keys
}

func productIDs(products []catalogmapper.Product) []int64 {
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestNewRouter_MiddlewareRunsOnEveryRoute(t *testing.T) {
	h := newHarness(t, nil)
	var seen []string
	h.router = NewRouter(h.handlers, func(c *gin.Context) {
		seen = append(seen, c.FullPath())
		c.Next()
	})

	rec := h.do(t, http.MethodGet, "/api/home", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = h.do(t, http.MethodGet, "/admin/productos", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Equal(t, []string{"/api/home", "/admin/productos"}, seen)
}

func TestAdminRoutes_RequireMatchingToken(t *testing.T) {
	h := newHarness(t, nil)

	requireProblem(t, h.do(t, http.MethodGet, "/admin/productos", "", nil), http.StatusUnauthorized, apierrors.TypeUnauthorized)

	token := h.login(t)
	requireProblem(t, h.do(t, http.MethodGet, "/admin/productos", "not-"+token, nil), http.StatusUnauthorized, apierrors.TypeUnauthorized)

	rec := h.do(t, http.MethodGet, "/admin/productos", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRevokeSession_LocksBackOffice(t *testing.T) {
	h := newHarness(t, nil)
	token := h.login(t)

	require.Equal(t, http.StatusNoContent, h.do(t, http.MethodDelete, "/api/session", token, nil).Code)
	requireProblem(t, h.do(t, http.MethodGet, "/admin/clientes", token, nil), http.StatusUnauthorized, apierrors.TypeUnauthorized)
}

func TestIssueSession_ReplacesPreviousToken(t *testing.T) {
	h := newHarness(t, nil)
	first := h.login(t)
	second := h.login(t)
	require.NotEqual(t, first, second)

	requireProblem(t, h.do(t, http.MethodGet, "/admin/pedidos", first, nil), http.StatusUnauthorized, apierrors.TypeUnauthorized)
	require.Equal(t, http.StatusOK, h.do(t, http.MethodGet, "/admin/pedidos", second, nil).Code)
}

func TestIssueSession_DisabledAnswersForbidden(t *testing.T) {
	h := newHarness(t, nil)
	handlers := h.handlers
	handlers.SessionAPI = NewSessionAPI(h.sessions, WithIssueDisabled())
	router := NewRouterWithGinEngine(gin.New(), handlers)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/session", nil))
	problem := requireProblem(t, rec, http.StatusForbidden, apierrors.TypeForbidden)
	assert.Equal(t, "session issuing is disabled", problem.Detail)

	assert.Error(t, h.sessions.Verify(context.Background(), "token-1"))
}

func TestHome_FeaturesInStockProducts(t *testing.T) {
	h := newHarness(t, nil)
	_, err := h.cart.AddToCart(context.Background(), 1, 2)
	require.NoError(t, err)

	rec := h.do(t, http.MethodGet, "/api/home", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	home := decode[HomeView](t, rec)

	require.Len(t, home.Featured, featuredLimit)
	for _, p := range home.Featured {
		assert.Positive(t, p.Stock)
	}
	assert.Equal(t, []string{"Frutas", "Verduras", "Orgánicos", "Lácteos"}, home.Categories)
	assert.EqualValues(t, 2, home.CartCount)
}

func TestListProducts_FiltersByTextAndCategory(t *testing.T) {
	h := newHarness(t, staticLookups{
		categories: []catalogdomain.Lookup{{ID: 3, Name: "Orgánicos"}},
	})

	rec := h.do(t, http.MethodGet, "/api/productos?"+url.Values{"q": {"orgánica"}}.Encode(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{4, 7, 8}, productIDs(decode[[]catalogmapper.Product](t, rec)))

	query := url.Values{"q": {"orgánica"}, "categoria": {"Orgánicos"}}
	rec = h.do(t, http.MethodGet, "/api/productos?"+query.Encode(), "", nil)
	products := decode[[]catalogmapper.Product](t, rec)
	require.Equal(t, []int64{7, 8}, productIDs(products))
	require.NotNil(t, products[0].Category)
	assert.EqualValues(t, 3, products[0].Category.ID)

	rec = h.do(t, http.MethodGet, "/api/productos?categoria=todas", "", nil)
	assert.Len(t, decode[[]catalogmapper.Product](t, rec), 9)
}

func TestGetProduct(t *testing.T) {
	h := newHarness(t, nil)

	rec := h.do(t, http.MethodGet, "/api/productos/8", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	product := decode[catalogmapper.Product](t, rec)
	assert.EqualValues(t, 12990, product.Price)
	assert.False(t, product.LowStock)

	missing := requireProblem(t, h.do(t, http.MethodGet, "/api/productos/99", "", nil), http.StatusNotFound, apierrors.TypeNotFound)
	assert.Equal(t, "producto with identifier '99' not found", missing.Detail)
	assert.Equal(t, "producto", missing.Extensions["resourceType"])
	requireProblem(t, h.do(t, http.MethodGet, "/api/productos/abc", "", nil), http.StatusBadRequest, apierrors.TypeBadRequest)
}

func TestAddToCart_CoercesQuantityAndMergesLines(t *testing.T) {
	h := newHarness(t, nil)

	rec := h.do(t, http.MethodPost, "/api/carrito", "", `{"idProducto":8,"cantidad":"3 kg"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decode[CartView](t, rec)
	assert.EqualValues(t, 3, view.Units)
	assert.Equal(t, "$38.970", view.FormattedTotal)

	rec = h.do(t, http.MethodPost, "/api/carrito", "", `{"idProducto":8,"cantidad":2}`)
	view = decode[CartView](t, rec)
	require.Len(t, view.Lines, 1)
	assert.EqualValues(t, 5, view.Lines[0].Quantity)

	rec = h.do(t, http.MethodPost, "/api/carrito", "", `{"idProducto":1,"cantidad":"abc"}`)
	view = decode[CartView](t, rec)
	require.Len(t, view.Lines, 2)
	assert.EqualValues(t, 1, view.Lines[1].Quantity)
	assert.EqualValues(t, 6, view.Units)

	rec = h.do(t, http.MethodPost, "/api/carrito", "", `{"idProducto":2}`)
	assert.EqualValues(t, 7, decode[CartView](t, rec).Units)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	h := newHarness(t, nil)
	requireProblem(t, h.do(t, http.MethodPost, "/api/carrito", "", `{"idProducto":404,"cantidad":1}`), http.StatusNotFound, apierrors.TypeNotFound)

	rec := h.do(t, http.MethodGet, "/api/carrito", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[CartView](t, rec).Lines)
}

func TestClearCart(t *testing.T) {
	h := newHarness(t, nil)
	_, err := h.cart.AddToCart(context.Background(), 3, 4)
	require.NoError(t, err)

	require.Equal(t, http.StatusNoContent, h.do(t, http.MethodDelete, "/api/carrito", "", nil).Code)
	view := decode[CartView](t, h.do(t, http.MethodGet, "/api/carrito", "", nil))
	assert.Zero(t, view.Units)
	assert.NotNil(t, view.Lines)
}

// sseRecorder lets the test read a live event stream while the handler keeps writing.
type sseRecorder struct {
	*httptest.ResponseRecorder
	mu     sync.Mutex
	buf    bytes.Buffer
	closed chan bool
}

func newSSERecorder() *sseRecorder {
	return &sseRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
}

func (r *sseRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

func (r *sseRecorder) WriteString(s string) (int, error) {
	return r.Write([]byte(s))
}

func (r *sseRecorder) CloseNotify() <-chan bool { return r.closed }

func (r *sseRecorder) body() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.String()
}

func TestStreamCartEvents_PushesLatestSummary(t *testing.T) {
	h := newHarness(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/carrito/events", nil).WithContext(ctx)
	rec := newSSERecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.router.ServeHTTP(rec, req)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(rec.body(), `"unidades":0`)
	}, time.Second, 10*time.Millisecond)

	_, err := h.cart.AddToCart(context.Background(), 8, 2)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return strings.Contains(rec.body(), `{"lineas":1,"unidades":2}`)
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event stream did not stop after the client left")
	}
	assert.Contains(t, rec.body(), "event:"+cartEventName)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
}

func TestAdminProducts_TableFiltersAndPlaceholder(t *testing.T) {
	h := newHarness(t, nil)
	token := h.login(t)

	rec := h.do(t, http.MethodGet, "/admin/productos?stockBajo=si", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tbl := decode[table.Table](t, rec)
	assert.Equal(t, []string{"5", "9"}, rowKeys(tbl))
	assert.Equal(t, table.ToneNegative, tbl.Rows[0].Cells[4].Tone)

	rec = h.do(t, http.MethodGet, "/admin/productos?q=zzz", token, nil)
	tbl = decode[table.Table](t, rec)
	require.Len(t, tbl.Rows, 1)
	assert.True(t, tbl.Rows[0].Placeholder)
	assert.Equal(t, len(tbl.Columns), tbl.Rows[0].Span)
	assert.Equal(t, catalogapp.EmptyProductsMessage, tbl.Rows[0].Cells[0].Text)
}

func TestAdminProducts_Delete(t *testing.T) {
	h := newHarness(t, nil)
	token := h.login(t)

	require.Equal(t, http.StatusNoContent, h.do(t, http.MethodDelete, "/admin/productos/9", token, nil).Code)
	requireProblem(t, h.do(t, http.MethodDelete, "/admin/productos/9", token, nil), http.StatusNotFound, apierrors.TypeNotFound)
	requireProblem(t, h.do(t, http.MethodGet, "/api/productos/9", "", nil), http.StatusNotFound, apierrors.TypeNotFound)
}

func TestProductEditor_CreateAssignsNextID(t *testing.T) {
	h := newHarness(t, nil)
	token := h.login(t)

	rec := h.do(t, http.MethodPatch, "/admin/productos/editor", token,
		`{"nombre":"Palta Hass","categoria":"Frutas","precio":4990,"stock":"25"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	state := decode[editor.State](t, rec)
	assert.Equal(t, editor.ModeCreate, state.Mode)
	assert.Equal(t, "4990", state.Draft["precio"])

	rec = h.do(t, http.MethodPost, "/admin/productos/editor/submit", token, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	commit := decode[EditorCommit[catalogdomain.Product]](t, rec)
	require.NotNil(t, commit.Record)
	assert.EqualValues(t, 10, commit.Record.ID)
	assert.Equal(t, catalogdomain.DefaultOrigin, commit.Record.Origin)
	assert.Empty(t, commit.State.Draft)

	tbl := decode[table.Table](t, h.do(t, http.MethodGet, "/admin/productos?q=palta", token, nil))
	require.Equal(t, []string{"10"}, rowKeys(tbl))
	assert.Equal(t, table.TonePositive, tbl.Rows[0].Cells[4].Tone)
}

func TestProductEditor_ValidationProblemKeepsDraft(t *testing.T) {
	h := newHarness(t, nil)
	token := h.login(t)

	h.do(t, http.MethodPatch, "/admin/productos/editor", token, `{"nombre":"","precio":"-5"}`)
	problem := requireProblem(t, h.do(t, http.MethodPost, "/admin/productos/editor/submit", token, nil),
		http.StatusBadRequest, apierrors.TypeValidation)
	fields, ok := problem.Extensions["fields"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, fields, "nombre")
	assert.Contains(t, fields, "categoria")
	assert.Contains(t, fields, "precio")

	state := decode[editor.State](t, h.do(t, http.MethodGet, "/admin/productos/editor", token, nil))
	assert.Equal(t, "-5", state.Draft["precio"])
	assert.NotEmpty(t, state.FieldErrors)
}

func TestProductEditor_EditKeepsIdentifierReadOnly(t *testing.T) {
	h := newHarness(t, nil)
	token := h.login(t)

	rec := h.do(t, http.MethodPost, "/admin/productos/editor/select/8", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[editor.State](t, rec)
	assert.Equal(t, editor.ModeEditing, state.Mode)
	assert.True(t, state.IDReadOnly)
	assert.Equal(t, "Quinoa Orgánica", state.Draft["nombre"])

	requireProblem(t, h.do(t, http.MethodPatch, "/admin/productos/editor", token, `{"id":"99"}`),
		http.StatusBadRequest, apierrors.TypeBadRequest)

	h.do(t, http.MethodPatch, "/admin/productos/editor", token, `{"precio":11990}`)
	rec = h.do(t, http.MethodPost, "/admin/productos/editor/submit", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	commit := decode[EditorCommit[catalogdomain.Product]](t, rec)
	assert.True(t, commit.Applied)
	assert.EqualValues(t, 11990, commit.Record.Price)
	assert.Equal(t, editor.ModeCreate, commit.State.Mode)
}

func TestProductEditor_CancelAndUnknownSelection(t *testing.T) {
	h := newHarness(t, nil)
	token := h.login(t)

	requireProblem(t, h.do(t, http.MethodPost, "/admin/productos/editor/select/404", token, nil),
		http.StatusNotFound, apierrors.TypeNotFound)

	h.do(t, http.MethodPost, "/admin/productos/editor/select/1", token, nil)
	rec := h.do(t, http.MethodPost, "/admin/productos/editor/cancel", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	state := decode[editor.State](t, rec)
	assert.Equal(t, editor.ModeCreate, state.Mode)
	assert.False(t, state.IDReadOnly)
	assert.Empty(t, state.Draft)
}

func TestProductEditor_RejectsNestedValues(t *testing.T) {
	h := newHarness(t, nil)
	token := h.login(t)

	requireProblem(t, h.do(t, http.MethodPatch, "/admin/productos/editor", token, `{"nombre":{"es":"Palta"}}`),
		http.StatusBadRequest, apierrors.TypeBadRequest)
}

func TestProductEditor_DroppedWhenSessionIsReplaced(t *testing.T) {
	h := newHarness(t, nil)
	first := h.login(t)
	h.do(t, http.MethodPost, "/admin/productos/editor/select/2", first, nil)

	second := h.login(t)
	state := decode[editor.State](t, h.do(t, http.MethodGet, "/admin/productos/editor", second, nil))
	assert.Equal(t, editor.ModeCreate, state.Mode)
}

func TestAdminLookups(t *testing.T) {
	h := newHarness(t, staticLookups{
		categories: []catalogdomain.Lookup{{ID: 1, Name: "Frutas"}},
		countries:  []catalogdomain.Lookup{{ID: 1, Name: "Chile"}, {ID: 2, Name: "Perú"}},
	})
	token := h.login(t)

	rec := h.do(t, http.MethodGet, "/admin/lookups", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[LookupsView](t, rec)
	assert.Equal(t, []catalogmapper.Category{{ID: 1, Name: "Frutas"}}, view.Categories)
	assert.Len(t, view.Countries, 2)
}

func TestAdminCustomers_FiltersByCountryAndFrequency(t *testing.T) {
	h := newHarness(t, nil)
	token := h.login(t)

	query := url.Values{"pais": {"Chile"}, "frecuente": {"si"}}
	rec := h.do(t, http.MethodGet, "/admin/clientes?"+query.Encode(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tbl := decode[table.Table](t, rec)
	assert.Equal(t, []string{"12.345.678-5", "15.432.198-0", "11.223.344-K"}, rowKeys(tbl))
	assert.Equal(t, "Sí", tbl.Rows[0].Cells[4].Text)
}

func TestCustomerEditor_CreateReplacesByRUT(t *testing.T) {
	h := newHarness(t, nil)
	token := h.login(t)

	h.do(t, http.MethodPatch, "/admin/clientes/editor", token, `{
		"rut":"9.876.543-3","nombre":"María","apellidoPaterno":"López","apellidoMaterno":"Soto",
		"pais":"Chile","pedidos":12,"frecuente":true}`)
	rec := h.do(t, http.MethodPost, "/admin/clientes/editor/submit", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	commit := decode[EditorCommit[customerRecord]](t, rec)
	assert.False(t, commit.Created)
	require.NotNil(t, commit.Record)
	assert.True(t, commit.Record.Frequent)

	tbl := decode[table.Table](t, h.do(t, http.MethodGet, "/admin/clientes", token, nil))
	assert.Len(t, tbl.Rows, 5)
}

type customerRecord struct {
	RUT      string `json:"rut"`
	Frequent bool   `json:"frecuente"`
}

func TestAdminOrders(t *testing.T) {
	h := newHarness(t, nil)
	token := h.login(t)

	rec := h.do(t, http.MethodGet, "/admin/pedidos?estado=Pendiente", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tbl := decode[table.Table](t, rec)
	assert.Equal(t, []string{"ORD-1002", "ORD-1005"}, rowKeys(tbl))
	assert.Equal(t, table.ToneCaution, tbl.Rows[0].Cells[4].Tone)

	rec = h.do(t, http.MethodGet, "/admin/pedidos/ORD-1004", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"estado":"Cancelado"`)

	order := requireProblem(t, h.do(t, http.MethodGet, "/admin/pedidos/ORD-404", token, nil), http.StatusNotFound, apierrors.TypeNotFound)
	assert.Equal(t, "ORD-404", order.Extensions["identifier"])
}
