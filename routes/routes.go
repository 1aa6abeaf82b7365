// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"vsprice-server/commons"
	"vsprice-server/handlers"
	"vsprice-server/middlewares"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering v1 routes")
	api_v1 := e.Group("/v1")
	api_v1.POST("/auth/login", handlers.AdminLoginHandler)
	api_v1.POST("/auth/logout", handlers.AdminLogoutHandler, middlewares.VerifyAdminMiddleware())
	api_v1.PUT("/auth/password", handlers.ChangePasswordHandler, middlewares.VerifyAdminMiddleware())
	api_v1.GET("/plans", handlers.GetPlansHandler)
	api_v1.GET("/pricing/options", handlers.GetPricingOptionsHandler)
	api_v1.POST("/quotes", handlers.ComputeQuoteHandler)
	api_v1.GET("/labs", handlers.GetLabsHandler)
	api_v1.GET("/admin/pricing", handlers.GetPricingCatalogHandler, middlewares.VerifyAdminMiddleware())
	api_v1.PUT("/admin/pricing", handlers.ReplacePricingCatalogHandler, middlewares.VerifyAdminMiddleware())
	api_v1.PATCH("/admin/pricing/plans/:plan_key", handlers.UpdatePlanHandler, middlewares.VerifyAdminMiddleware())
	api_v1.PUT("/admin/pricing/features", handlers.UpdateFeaturesHandler, middlewares.VerifyAdminMiddleware())
	api_v1.POST("/admin/pricing/reset", handlers.ResetPricingCatalogHandler, middlewares.VerifyAdminMiddleware())
	api_v1.POST("/admin/pricing/import", handlers.ImportPricingHandler, middlewares.VerifyAdminMiddleware())
	api_v1.GET("/admin/pricing/template", handlers.PricingTemplateHandler, middlewares.VerifyAdminMiddleware())
	api_v1.POST("/admin/labs", handlers.CreateLabHandler, middlewares.VerifyAdminMiddleware())
	api_v1.PUT("/admin/labs", handlers.ReplaceLabsHandler, middlewares.VerifyAdminMiddleware())
	api_v1.PATCH("/admin/labs/:lab_id", handlers.UpdateLabHandler, middlewares.VerifyAdminMiddleware())
	api_v1.DELETE("/admin/labs/:lab_id", handlers.DeleteLabHandler, middlewares.VerifyAdminMiddleware())
	api_v1.POST("/admin/labs/reset", handlers.ResetLabsHandler, middlewares.VerifyAdminMiddleware())
	api_v1.POST("/admin/labs/import", handlers.ImportLabsHandler, middlewares.VerifyAdminMiddleware())
	api_v1.GET("/admin/labs/template", handlers.LabsTemplateHandler, middlewares.VerifyAdminMiddleware())
	e.GET("/*", handlers.ServeStaticFile)
	commons.Logger.Info("v1 routes registered successfully")
}
