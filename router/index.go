package router

import (
	"studio_manager/handler"
	"studio_manager/middleware"
	"studio_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/register", validate.RegisterMember(), handler.RegisterMember)
	auth.Post("/member-login", validate.Login(), handler.MemberLogin)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.AdminChangePassword(), handler.AdminChangePassword)
	account.Patch("/:accountId/active", middleware.Protected(), validate.GetById("accountId"), handler.ActiveAccount)

	teacher := v1.Group("/teacher", logger.New())
	teacher.Get("/", handler.GetTeachers)
	teacher.Post("/", middleware.Protected(), validate.CreateTeacher(), handler.CreateTeacher)
	teacher.Put("/:teacherId", middleware.Protected(), validate.GetById("teacherId"), validate.UpdateTeacher(), handler.UpdateTeacher)
	teacher.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteTeachers)

	member := v1.Group("/member", logger.New())
	member.Get("/", middleware.Protected(), handler.GetMembers)
	member.Get("/me", middleware.Protected(), handler.MyProfile)
	member.Put("/me", middleware.Protected(), handler.EditMyProfile)
	member.Post("/me/change-password", middleware.Protected(), validate.MemberChangePassword(), handler.MemberChangePassword)
	member.Get("/:memberId", middleware.Protected(), validate.GetById("memberId"), handler.GetMemberDetail)
	member.Patch("/:memberId/active", middleware.Protected(), validate.GetById("memberId"), handler.ActiveMember)

	item := v1.Group("/item", logger.New())
	item.Get("/", middleware.OptionalJWT(), handler.GetItems)
	item.Get("/:itemId", validate.ValidItemId("itemId"), handler.GetItemDetail)
	item.Post("/", middleware.Protected(), validate.CreateItem(), handler.CreateItem)
	item.Put("/:itemId", middleware.Protected(), validate.UpdateItem("itemId"), handler.UpdateItem)
	item.Post("/:itemId/image", middleware.Protected(), validate.ValidItemId("itemId"), handler.UploadItemImage)
	item.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteItems)

	template := v1.Group("/template", logger.New())
	template.Get("/", middleware.Protected(), handler.GetTemplates)
	template.Get("/:templateId", middleware.Protected(), validate.ValidTemplateId("templateId"), handler.GetTemplateDetail)
	template.Post("/", middleware.Protected(), validate.CreateTemplate(), validate.CheckTemplateMode(), handler.CreateTemplate)
	template.Put("/:templateId", middleware.Protected(), validate.ValidTemplateId("templateId"), validate.CreateTemplate(), validate.CheckTemplateMode(), handler.UpdateTemplate)
	template.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteTemplates)

	session := v1.Group("/session", logger.New())
	session.Get("/", middleware.OptionalJWT(), handler.GetSessions)
	session.Get("/:sessionId", middleware.OptionalJWT(), validate.GetById("sessionId"), handler.GetSessionDetail)
	session.Post("/", middleware.Protected(), validate.CreateSession(), handler.CreateSession)
	session.Post("/generate", middleware.Protected(), validate.GenerateSessions(), handler.GenerateSessions)
	session.Post("/generate-from-template", middleware.Protected(), validate.GenerateFromTemplate(), handler.GenerateFromTemplate)
	session.Post("/bulk-assign-teacher", middleware.Protected(), validate.BulkAssignTeacher(), handler.BulkAssignTeacher)
	session.Put("/:sessionId", middleware.Protected(), validate.UpdateSession("sessionId"), handler.UpdateSession)
	session.Patch("/:sessionId/cancel", middleware.Protected(), validate.GetById("sessionId"), handler.CancelSession)
	session.Get("/:sessionId/roster", middleware.Protected(), validate.GetById("sessionId"), handler.GetSessionRoster)
	session.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteSessions)

	checkin := v1.Group("/checkin", logger.New())
	checkin.Post("/:code", middleware.Protected(), handler.CheckInBooking)

	product := v1.Group("/product", logger.New())
	product.Get("/", middleware.OptionalJWT(), handler.GetProducts)
	product.Get("/:productId", validate.ValidProductId("productId"), handler.GetProductDetail)
	product.Post("/", middleware.Protected(), validate.CreateProduct(), handler.CreateProduct)
	product.Put("/:productId", middleware.Protected(), validate.UpdateProduct("productId"), handler.UpdateProduct)
	product.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteProducts)
	product.Put("/quota-pool/:poolId", middleware.Protected(), validate.UpdateQuotaPool("poolId"), handler.UpdateQuotaPool)
	product.Delete("/quota-pool/:poolId", middleware.Protected(), validate.GetById("poolId"), handler.DeleteQuotaPool)

	membership := v1.Group("/membership", logger.New())
	membership.Get("/", middleware.Protected(), handler.GetMemberships)
	membership.Get("/my", middleware.Protected(), handler.MyMemberships)
	membership.Post("/sell", middleware.Protected(), validate.SellMembership(), handler.SellMembership)
	membership.Patch("/:membershipId/status", middleware.Protected(), validate.UpdateMembershipStatus("membershipId"), handler.UpdateMembershipStatus)

	booking := v1.Group("/booking", logger.New())
	booking.Get("/", middleware.Protected(), handler.GetBookings)
	booking.Get("/my", middleware.Protected(), handler.MyBookings)
	booking.Get("/eligibility/:sessionId", middleware.Protected(), validate.GetById("sessionId"), handler.CheckBookingEligibility)
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Patch("/:bookingId/cancel", middleware.Protected(), validate.GetById("bookingId"), handler.CancelBooking)
	booking.Get("/:bookingId/qr", middleware.Protected(), validate.GetById("bookingId"), handler.BookingQR)

	ws := v1.Group("/ws")
	ws.Use(func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/session/:id", websocket.New(handler.SessionSocket))
}
