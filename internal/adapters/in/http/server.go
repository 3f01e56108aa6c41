// Package http provides the echo-based HTTP adapter.
// It translates requests into commands and queries, and use case errors into
// status codes.
package http

import (
	"net/http"
	"strconv"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/application/usecases/views"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerUserHandler      commands.RegisterUserCommandHandler
	createStoreHandler       commands.CreateStoreCommandHandler
	createMenuHandler        commands.CreateMenuCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createReviewHandler      commands.CreateReviewCommandHandler

	signInHandler           queries.SignInQueryHandler
	getCustomerOrderHandler queries.GetCustomerOrderQueryHandler
	getOwnerOrderHandler    queries.GetOwnerOrderQueryHandler
	getStoresHandler        queries.GetStoresQueryHandler
	getStoreReviewsHandler  queries.GetStoreReviewsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	createStoreHandler commands.CreateStoreCommandHandler,
	createMenuHandler commands.CreateMenuCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createReviewHandler commands.CreateReviewCommandHandler,
	signInHandler queries.SignInQueryHandler,
	getCustomerOrderHandler queries.GetCustomerOrderQueryHandler,
	getOwnerOrderHandler queries.GetOwnerOrderQueryHandler,
	getStoresHandler queries.GetStoresQueryHandler,
	getStoreReviewsHandler queries.GetStoreReviewsQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:      registerUserHandler,
		createStoreHandler:       createStoreHandler,
		createMenuHandler:        createMenuHandler,
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		createReviewHandler:      createReviewHandler,
		signInHandler:            signInHandler,
		getCustomerOrderHandler:  getCustomerOrderHandler,
		getOwnerOrderHandler:     getOwnerOrderHandler,
		getStoresHandler:         getStoresHandler,
		getStoreReviewsHandler:   getStoreReviewsHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. Routes past
// authentication take identity from the context set by authMW.
func (s *Server) RegisterRoutes(e *echo.Echo, authMW echo.MiddlewareFunc) {
	api := e.Group("/api/v1")

	api.POST("/auth/signup", s.SignUp)
	api.POST("/auth/signin", s.SignIn)
	api.GET("/stores", s.GetStores)
	api.GET("/stores/:storeID/reviews", s.GetStoreReviews)

	authed := api.Group("", authMW)
	authed.POST("/stores", s.CreateStore)
	authed.POST("/stores/:storeID/menus", s.CreateMenu)
	authed.POST("/orders", s.CreateOrder)
	authed.PATCH("/orders/:orderID/status", s.ChangeOrderStatus)
	authed.POST("/orders/:orderID/reviews", s.CreateReview)
	authed.GET("/customers/orders/:orderID", s.GetCustomerOrder)
	authed.GET("/owners/orders/:orderID", s.GetOwnerOrder)
}

func identity(ctx echo.Context) (int64, user.Role) {
	userID, _ := ctx.Get(CtxUserIDKey).(int64)
	roleName, _ := ctx.Get(CtxUserRoleKey).(string)
	return userID, user.Role(roleName)
}

func pathID(ctx echo.Context, name string) (int64, error) {
	return strconv.ParseInt(ctx.Param(name), 10, 64)
}

type orderViewResponse struct {
	OrderID       int64  `json:"order_id"`
	CustomerID    int64  `json:"customer_id"`
	CustomerEmail string `json:"customer_email"`
	StoreID       int64  `json:"store_id"`
	StoreName     string `json:"store_name"`
	MenuID        int64  `json:"menu_id"`
	MenuName      string `json:"menu_name"`
	MenuPrice     int64  `json:"menu_price"`
	Status        string `json:"status"`
	TotalPrice    int64  `json:"total_price"`

	CanUserCancel          bool     `json:"can_user_cancel"`
	AvailableStatusChanges []string `json:"available_status_changes"`
}

func toOrderViewResponse(view views.OrderView) orderViewResponse {
	changes := make([]string, 0, len(view.AvailableStatusChanges))
	for _, status := range view.AvailableStatusChanges {
		changes = append(changes, status.String())
	}

	return orderViewResponse{
		OrderID:       view.OrderID,
		CustomerID:    view.CustomerID,
		CustomerEmail: view.CustomerEmail,
		StoreID:       view.StoreID,
		StoreName:     view.StoreName,
		MenuID:        view.MenuID,
		MenuName:      view.MenuName,
		MenuPrice:     view.MenuPrice,
		Status:        view.Status.String(),
		TotalPrice:    view.TotalPrice,

		CanUserCancel:          view.CanUserCancel,
		AvailableStatusChanges: changes,
	}
}

// SignUp handles POST /api/v1/auth/signup.
func (s *Server) SignUp(ctx echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON("invalid request body"))
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	cmd, err := commands.NewRegisterUserCommand(req.Email, req.Password, role)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	userID, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"user_id": userID})
}

// SignIn handles POST /api/v1/auth/signin.
func (s *Server) SignIn(ctx echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON("invalid request body"))
	}

	query, err := queries.NewSignInQuery(req.Email, req.Password)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	resp, err := s.signInHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"user_id": resp.UserID,
		"role":    resp.Role,
		"token":   resp.Token,
	})
}

// CreateStore handles POST /api/v1/stores.
func (s *Server) CreateStore(ctx echo.Context) error {
	var req struct {
		Name           string `json:"name"`
		OpenTime       string `json:"open_time"`
		CloseTime      string `json:"close_time"`
		MinOrderAmount int64  `json:"min_order_amount"`
		Notice         string `json:"notice"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON("invalid request body"))
	}

	openTime, err := kernel.ParseTimeOfDay(req.OpenTime)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	closeTime, err := kernel.ParseTimeOfDay(req.CloseTime)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	userID, role := identity(ctx)
	cmd, err := commands.NewCreateStoreCommand(
		userID, role, req.Name, openTime, closeTime, req.MinOrderAmount, req.Notice)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	storeID, err := s.createStoreHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"store_id": storeID})
}

// GetStores handles GET /api/v1/stores.
func (s *Server) GetStores(ctx echo.Context) error {
	query := queries.NewGetStoresQuery(ctx.QueryParam("name"))

	stores, err := s.getStoresHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	type storeResponse struct {
		ID             int64  `json:"store_id"`
		Name           string `json:"name"`
		OpenTime       string `json:"open_time"`
		CloseTime      string `json:"close_time"`
		MinOrderAmount int64  `json:"min_order_amount"`
		Notice         string `json:"notice"`
	}

	resp := make([]storeResponse, 0, len(stores))
	for _, st := range stores {
		resp = append(resp, storeResponse{
			ID:             st.ID,
			Name:           st.Name,
			OpenTime:       st.OpenTime.String(),
			CloseTime:      st.CloseTime.String(),
			MinOrderAmount: st.MinOrderAmount,
			Notice:         st.Notice,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// CreateMenu handles POST /api/v1/stores/:storeID/menus.
func (s *Server) CreateMenu(ctx echo.Context) error {
	storeID, err := pathID(ctx, "storeID")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON("invalid store id"))
	}

	var req struct {
		Name  string `json:"name"`
		Price int64  `json:"price"`
	}
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON("invalid request body"))
	}

	userID, role := identity(ctx)
	cmd, err := commands.NewCreateMenuCommand(userID, role, storeID, req.Name, req.Price)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	menuID, err := s.createMenuHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"menu_id": menuID})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req struct {
		StoreID    int64  `json:"store_id"`
		MenuID     int64  `json:"menu_id"`
		Status     string `json:"status"`
		TotalPrice int64  `json:"total_price"`
	}
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON("invalid request body"))
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	userID, role := identity(ctx)
	cmd, err := commands.NewCreateOrderCommand(
		userID, role, req.StoreID, req.MenuID, status, req.TotalPrice)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	view, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	return ctx.JSON(http.StatusCreated, toOrderViewResponse(view))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:orderID/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON("invalid order id"))
	}

	var req struct {
		Status string `json:"status"`
	}
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON("invalid request body"))
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	userID, role := identity(ctx)
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, userID, role, target)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	view, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	return ctx.JSON(http.StatusOK, toOrderViewResponse(view))
}

// GetCustomerOrder handles GET /api/v1/customers/orders/:orderID.
func (s *Server) GetCustomerOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON("invalid order id"))
	}

	userID, role := identity(ctx)
	query, err := queries.NewGetCustomerOrderQuery(orderID, userID, role)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	view, err := s.getCustomerOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	return ctx.JSON(http.StatusOK, toOrderViewResponse(view))
}

// GetOwnerOrder handles GET /api/v1/owners/orders/:orderID.
func (s *Server) GetOwnerOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON("invalid order id"))
	}

	userID, role := identity(ctx)
	query, err := queries.NewGetOwnerOrderQuery(orderID, userID, role)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	view, err := s.getOwnerOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	return ctx.JSON(http.StatusOK, toOrderViewResponse(view))
}

// CreateReview handles POST /api/v1/orders/:orderID/reviews.
func (s *Server) CreateReview(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON("invalid order id"))
	}

	var req struct {
		Rating  int    `json:"rating"`
		Content string `json:"content"`
	}
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON("invalid request body"))
	}

	userID, role := identity(ctx)
	cmd, err := commands.NewCreateReviewCommand(userID, role, orderID, req.Rating, req.Content)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	reviewID, err := s.createReviewHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	return ctx.JSON(http.StatusCreated, map[string]int64{"review_id": reviewID})
}

// GetStoreReviews handles GET /api/v1/stores/:storeID/reviews.
func (s *Server) GetStoreReviews(ctx echo.Context) error {
	storeID, err := pathID(ctx, "storeID")
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorJSON("invalid store id"))
	}

	minRating := review.MinRating
	if raw := ctx.QueryParam("min_rating"); raw != "" {
		if minRating, err = strconv.Atoi(raw); err != nil {
			return ctx.JSON(http.StatusBadRequest, errorJSON("invalid min_rating"))
		}
	}

	maxRating := review.MaxRating
	if raw := ctx.QueryParam("max_rating"); raw != "" {
		if maxRating, err = strconv.Atoi(raw); err != nil {
			return ctx.JSON(http.StatusBadRequest, errorJSON("invalid max_rating"))
		}
	}

	query, err := queries.NewGetStoreReviewsQuery(storeID, minRating, maxRating)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	reviews, err := s.getStoreReviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(respondError(err))
	}

	type reviewResponse struct {
		ID        int64  `json:"review_id"`
		OrderID   int64  `json:"order_id"`
		Rating    int    `json:"rating"`
		Content   string `json:"content"`
		CreatedAt string `json:"created_at"`
	}

	resp := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, reviewResponse{
			ID:        r.ID,
			OrderID:   r.OrderID,
			Rating:    r.Rating,
			Content:   r.Content,
			CreatedAt: r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}
