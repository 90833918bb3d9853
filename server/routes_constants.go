package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes - token issuance & logout
	RouteJWT    = "/jwt"
	RouteLogout = "/logout"

	// Task API Routes
	RouteTasks           = "/api/v1/tasks"
	RouteTaskByID        = "/api/v1/task/{id}"
	RouteAddTask         = "/api/v1/add-task"
	RouteUpdateTask      = "/api/v1/update-task/{id}"
	RouteStatusOngoing   = "/api/v1/task/status-ongoing/{id}"
	RouteStatusCompleted = "/api/v1/task/status-completed/{id}"
	RouteDeleteTask      = "/api/v1/delete-task/{id}"
)
