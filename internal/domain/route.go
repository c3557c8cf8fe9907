package domain

// RouteID identifies a shuttle route direction
type RouteID string

const (
	RouteMthathaToKingPhalo    RouteID = "Mthatha_to_KingPhalo"
	RouteKingPhaloToMthatha    RouteID = "KingPhalo_to_Mthatha"
	RouteQueenstownToKingPhalo RouteID = "Queenstown_to_KingPhalo"
	RouteKingPhaloToQueenstown RouteID = "KingPhalo_to_Queenstown"
)

// DemandRoutes маршруты, которые выполняются только при достаточном спросе
var DemandRoutes = []RouteID{
	RouteQueenstownToKingPhalo,
	RouteKingPhaloToQueenstown,
}

// Timetable ежедневное расписание отправлений по маршрутам
var Timetable = map[RouteID][]string{
	RouteMthathaToKingPhalo:    {"4:00 AM", "11:00 AM"},
	RouteKingPhaloToMthatha:    {"7:30 AM", "2:30 PM"},
	RouteQueenstownToKingPhalo: {"6:00 AM"},
	RouteKingPhaloToQueenstown: {"3:00 PM"},
}

// IsKnown returns true if the route is part of the timetable
func (r RouteID) IsKnown() bool {
	_, ok := Timetable[r]
	return ok
}

// IsDemandGated returns true if the route runs only once enough demand accumulates
func (r RouteID) IsDemandGated() bool {
	for _, route := range DemandRoutes {
		if route == r {
			return true
		}
	}
	return false
}

// RouteConfig represents the on/off switches for demand-gated routes
type RouteConfig struct {
	Enabled bool
	Routes  map[RouteID]bool
}

// DefaultRouteConfig возвращает конфигурацию со всеми маршрутами включенными
func DefaultRouteConfig(enabled bool) *RouteConfig {
	routes := make(map[RouteID]bool, len(DemandRoutes))
	for _, r := range DemandRoutes {
		routes[r] = true
	}
	return &RouteConfig{Enabled: enabled, Routes: routes}
}

// IsOfferable returns true if the route may be offered to customers.
// Обычные маршруты доступны всегда, маршруты по спросу зависят от двух флагов.
func (c *RouteConfig) IsOfferable(route RouteID) bool {
	if !route.IsDemandGated() {
		return route.IsKnown()
	}
	return c.Enabled && c.Routes[route]
}

// Clone возвращает независимую копию конфигурации
func (c *RouteConfig) Clone() *RouteConfig {
	routes := make(map[RouteID]bool, len(c.Routes))
	for k, v := range c.Routes {
		routes[k] = v
	}
	return &RouteConfig{Enabled: c.Enabled, Routes: routes}
}
