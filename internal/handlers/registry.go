package handlers

// AppHandlers holds every handler group the router registers.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	AdminHandler        *AdminHandler
	NotificationHandler *NotificationHandler
	FileHandler         *FileHandler
}
