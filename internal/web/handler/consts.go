package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root of a route group registered with app.Route.
	RouterRootPath = "/"

	// AdminPath is the prefix of every admin route.
	AdminPath = "/admin"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"

	// LocalsBackground holds the background image url of the request.
	LocalsBackground = "background"

	// FormConfirmYes is the value of the confirm field that allows a delete.
	FormConfirmYes = "yes"
)

const (
	// ConfirmTemplateName is the delete confirmation page.
	ConfirmTemplateName = "admin/confirm"
)
