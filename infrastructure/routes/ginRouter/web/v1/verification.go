package routev1

import (
	apperrors "veriface.io/application/appErrors"
	"veriface.io/application/controller"
	"veriface.io/application/controller/dto"
	"veriface.io/application/interfaces"
	"github.com/gin-gonic/gin"
)

func VerificationRouter(router *gin.RouterGroup) {
	verificationRouter := router.Group("/verification")
	{
		verificationRouter.POST("/document", func(ctx *gin.Context) {
			var body dto.DocumentExtractionDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.ExtractDocument(&interfaces.ApplicationContext[dto.DocumentExtractionDTO]{
				Ctx:       ctx,
				Body:      &body,
				RequestID: ctx.GetString("RequestID"),
			})
		})

		verificationRouter.POST("/liveness", func(ctx *gin.Context) {
			var body dto.LivenessAssessmentDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.AssessLiveness(&interfaces.ApplicationContext[dto.LivenessAssessmentDTO]{
				Ctx:       ctx,
				Body:      &body,
				RequestID: ctx.GetString("RequestID"),
			})
		})

		verificationRouter.POST("/match", func(ctx *gin.Context) {
			var body dto.FaceMatchDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.MatchFaces(&interfaces.ApplicationContext[dto.FaceMatchDTO]{
				Ctx:       ctx,
				Body:      &body,
				RequestID: ctx.GetString("RequestID"),
			})
		})

		verificationRouter.GET("/records/:kind/:id", func(ctx *gin.Context) {
			controller.FetchRecord(&interfaces.ApplicationContext[any]{
				Ctx:       ctx,
				RequestID: ctx.GetString("RequestID"),
				Keys: map[string]any{
					"kind": ctx.Param("kind"),
					"id":   ctx.Param("id"),
				},
			})
		})
	}
}
