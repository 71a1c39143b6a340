package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/http/handler"
	"skintel.app/core/internal/model"
	"skintel.app/core/internal/service"
)

var _ = Describe("AnalysisHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAnalysisService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockAnalysisService{}
		h := handler.NewAnalysisHandler(svc)
		router.GET("/users/:user_id/analysis", h.Get)
	})

	It("returns 200 with needs and report items", func() {
		svc.analyzeFn = func(_ context.Context, userID int64) (*service.AnalysisResult, error) {
			return &service.AnalysisResult{
				Session: &model.CaptureSession{ID: 100, UserID: userID, Label: "이번 세션 분석"},
				Needs: []engine.PrioritizedNeed{
					{ID: "soothing", Label: "진정"},
				},
				ReportItems: []engine.ReportItem{
					{ID: "hydration"}, {ID: "elasticity"}, {ID: "radiance"},
					{ID: "soothing"}, {ID: "barrier"},
				},
			}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/users/42/analysis", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["session_id"]).To(Equal("100"))
		Expect(resp["needs"]).To(HaveLen(1))
		Expect(resp["report"]).To(HaveLen(5))
	})

	It("returns 404 when no capture session exists", func() {
		svc.analyzeFn = func(_ context.Context, _ int64) (*service.AnalysisResult, error) {
			return nil, service.ErrMissingSession
		}

		req := httptest.NewRequest(http.MethodGet, "/users/42/analysis", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns 404 for an unknown user", func() {
		svc.analyzeFn = func(_ context.Context, _ int64) (*service.AnalysisResult, error) {
			return nil, service.ErrUserNotFound
		}

		req := httptest.NewRequest(http.MethodGet, "/users/42/analysis", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
