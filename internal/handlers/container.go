package handlers

// AppHandlers groups every HTTP handler so route registration receives
// a single ready-made bundle.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	CategoryHandler    *CategoryHandler
}
