package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	blockDateHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/block_date"
	blockSlotHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/block_slot"
	changePinHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/change_pin"
	confirmDemandHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/confirm_demand"
	createCheckoutHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/create_checkout"
	declineDemandHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/decline_demand"
	deleteYocoWebhookHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/delete_yoco_webhook"
	getAdminStatusHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_admin_status"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_available_slots"
	getDemandStatsHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_demand_stats"
	getGraphBusyHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_graph_busy"
	getICSBusyHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_ics_busy"
	getICSURLHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_ics_url"
	getPaymentStatusHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_payment_status"
	getPricingQuoteHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_pricing_quote"
	getRouteConfigHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_route_config"
	healthHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/health"
	listBlockedHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/list_blocked"
	listDemandHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/list_demand"
	listYocoWebhooksHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/list_yoco_webhooks"
	pushCalendarBlocksHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/push_calendar_blocks"
	registerYocoWebhookHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/register_yoco_webhook"
	removeCalendarBlocksHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/remove_calendar_blocks"
	setICSURLHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/set_ics_url"
	staticHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/static"
	submitDemandHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/submit_demand"
	syncCalendarHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/sync_calendar"
	unblockAllDatesHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/unblock_all_dates"
	unblockDateHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/unblock_date"
	unblockSlotHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/unblock_slot"
	updateRouteConfigHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/update_route_config"
	verifyPinHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/verify_pin"
	yocoWebhookHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/yoco_webhook"
	"github.com/m04kA/SMC-ShuttleService/internal/api/middleware"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/graph"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/ics"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/yoco"
	adminService "github.com/m04kA/SMC-ShuttleService/internal/service/admin"
	availabilityService "github.com/m04kA/SMC-ShuttleService/internal/service/availability"
	demandService "github.com/m04kA/SMC-ShuttleService/internal/service/demand"
	paymentsService "github.com/m04kA/SMC-ShuttleService/internal/service/payments"
	routesService "github.com/m04kA/SMC-ShuttleService/internal/service/routes"
	confirmDemandUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/confirm_demand"
	getAvailableSlotsUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_available_slots"
	pushCalendarBlocksUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/push_calendar_blocks"
	removeCalendarBlocksUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/remove_calendar_blocks"
	syncCalendarUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/sync_calendar"
	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
	"github.com/m04kA/SMC-ShuttleService/pkg/metrics"
)

// Deps собранные зависимости HTTP слоя
type Deps struct {
	Availability *availabilityService.Service
	Demand       *demandService.Service
	Routes       *routesService.Service
	Admin        *adminService.Service
	Payments     *paymentsService.Service

	ICS   *ics.Client
	Graph *graph.Client
	Yoco  *yoco.Client

	ConfirmDemand  *confirmDemandUC.UseCase
	AvailableSlots *getAvailableSlotsUC.UseCase
	SyncCalendar   *syncCalendarUC.UseCase
	PushBlocks     *pushCalendarBlocksUC.UseCase
	RemoveBlocks   *removeCalendarBlocksUC.UseCase

	// Metrics nil, если метрики выключены
	Metrics     *metrics.Metrics
	MetricsPath string

	StaticDir string
	SiteURL   string
	Logger    *logger.Logger
}

// New собирает роутер со всеми endpoint'ами. CORS оборачивает весь роутер,
// чтобы preflight OPTIONS отвечал и для несуществующих маршрутов.
func New(d Deps) http.Handler {
	log := d.Logger

	// Инициализируем handlers
	listBlocked := listBlockedHandler.NewHandler(d.Availability, log)
	blockDate := blockDateHandler.NewHandler(d.Availability, log)
	unblockDate := unblockDateHandler.NewHandler(d.Availability, log)
	unblockAllDates := unblockAllDatesHandler.NewHandler(d.Availability, log)
	blockSlot := blockSlotHandler.NewHandler(d.Availability, log)
	unblockSlot := unblockSlotHandler.NewHandler(d.Availability, log)

	submitDemand := submitDemandHandler.NewHandler(d.Demand, log)
	getDemandStats := getDemandStatsHandler.NewHandler(d.Demand, log)
	listDemand := listDemandHandler.NewHandler(d.Demand, log)
	confirmDemand := confirmDemandHandler.NewHandler(d.ConfirmDemand, log)
	declineDemand := declineDemandHandler.NewHandler(d.Demand, log)
	getRouteConfig := getRouteConfigHandler.NewHandler(d.Routes, log)
	updateRouteConfig := updateRouteConfigHandler.NewHandler(d.Routes, log)

	verifyPin := verifyPinHandler.NewHandler(d.Admin, log)
	changePin := changePinHandler.NewHandler(d.Admin, log)
	getAdminStatus := getAdminStatusHandler.NewHandler(d.Admin)
	getICSURL := getICSURLHandler.NewHandler(d.ICS)
	setICSURL := setICSURLHandler.NewHandler(d.ICS, log)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(d.AvailableSlots, log)
	syncCalendar := syncCalendarHandler.NewHandler(d.SyncCalendar, log)
	getICSBusy := getICSBusyHandler.NewHandler(d.ICS, log)
	getGraphBusy := getGraphBusyHandler.NewHandler(d.Graph, log)
	pushCalendarBlocks := pushCalendarBlocksHandler.NewHandler(d.PushBlocks, log)
	removeCalendarBlocks := removeCalendarBlocksHandler.NewHandler(d.RemoveBlocks, log)

	createCheckout := createCheckoutHandler.NewHandler(d.Payments, log)
	yocoWebhook := yocoWebhookHandler.NewHandler(d.Payments, log)
	getPaymentStatus := getPaymentStatusHandler.NewHandler(d.Payments, log)
	getPricingQuote := getPricingQuoteHandler.NewHandler(log)
	registerYocoWebhook := registerYocoWebhookHandler.NewHandler(d.Yoco, log)
	listYocoWebhooks := listYocoWebhooksHandler.NewHandler(d.Yoco, log)
	deleteYocoWebhook := deleteYocoWebhookHandler.NewHandler(d.Yoco, log)

	health := healthHandler.NewHandler(d.SiteURL, d.Yoco, d.ICS, d.Graph)
	static := staticHandler.NewHandler(d.StaticDir, log)

	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if d.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.Metrics))
		r.Handle(d.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// --- Календарь ---
	api.HandleFunc("/calendar/blocked", listBlocked.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/ics", getICSBusy.Handle).Methods(http.MethodGet)
	api.HandleFunc("/graph/availability", getGraphBusy.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Рейсы по спросу ---
	api.HandleFunc("/queenstown/request", submitDemand.Handle).Methods(http.MethodPost)
	api.HandleFunc("/queenstown/stats", getDemandStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/queenstown/list", listDemand.Handle).Methods(http.MethodGet)
	api.HandleFunc("/queenstown/config", getRouteConfig.Handle).Methods(http.MethodGet)

	// --- Администратор ---
	api.HandleFunc("/admin/verify", verifyPin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/change-pin", changePin.Handle).Methods(http.MethodPost)
	api.HandleFunc("/admin/status", getAdminStatus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/admin/get-ics-url", getICSURL.Handle).Methods(http.MethodGet)

	// --- Оплата ---
	api.HandleFunc("/yoco/create-checkout", createCheckout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/yoco/webhook", yocoWebhook.Handle).Methods(http.MethodPost)
	api.HandleFunc("/yoco/status", getPaymentStatus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing/quote", getPricingQuote.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-Pin header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminPin(d.Admin, log))

	protected.HandleFunc("/calendar/block-date", blockDate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/unblock-date", unblockDate.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/unblock-all", unblockAllDates.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/block-slot", blockSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/unblock-slot", unblockSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/sync", syncCalendar.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/graph/push-blocks", pushCalendarBlocks.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/graph/remove-blocks", removeCalendarBlocks.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/queenstown/confirm", confirmDemand.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/queenstown/decline", declineDemand.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/queenstown/config", updateRouteConfig.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/admin/set-ics-url", setICSURL.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/yoco/register-webhook", registerYocoWebhook.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/yoco/webhooks", listYocoWebhooks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/yoco/delete-webhook", deleteYocoWebhook.Handle).Methods(http.MethodPost)

	// SPA: все остальные GET запросы
	r.PathPrefix("/").HandlerFunc(static.Handle).Methods(http.MethodGet)

	return middleware.CORS(r)
}
