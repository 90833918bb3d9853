package server

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET /{$}", s.IndexHandler())

	// AUTH
	s.RegisterRouteHandler("POST "+RouteJWT, ChainMiddleware(s.IssueTokenHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))

	// TASKS
	// Listing and every mutation require the guard; the mutating/listing
	// handlers additionally check that the email being operated on belongs
	// to the authenticated caller.
	s.RegisterRouteHandler("GET "+RouteTasks, ChainMiddleware(s.ListTasksHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("POST "+RouteAddTask, ChainMiddleware(s.AddTaskHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("PATCH "+RouteUpdateTask, ChainMiddleware(s.UpdateTaskHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("DELETE "+RouteDeleteTask, ChainMiddleware(s.DeleteTaskHandler(), s.APIMiddleware(s.RequireAuth())...))

	// Status transitions carry the guard but no ownership comparison, and
	// fetching a single task is reachable without a cookie at all. That is
	// the contract the frontend was built against.
	s.RegisterRouteHandler("GET "+RouteTaskByID, ChainMiddleware(s.GetTaskHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("PATCH "+RouteStatusOngoing, ChainMiddleware(s.MarkOngoingHandler(), s.APIMiddleware(s.RequireAuth())...))
	s.RegisterRouteHandler("PATCH "+RouteStatusCompleted, ChainMiddleware(s.MarkCompletedHandler(), s.APIMiddleware(s.RequireAuth())...))
}
