package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/http/handler"
	"skintel.app/core/internal/model"
	"skintel.app/core/internal/service"
)

var _ = Describe("RoutineHandler", func() {
	var (
		router *gin.Engine
		svc    *mockRoutineService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockRoutineService{}
		h := handler.NewRoutineHandler(svc)
		router.GET("/users/:user_id/routines/monthly", h.GetMonthly)
		router.GET("/users/:user_id/routines/weekly", h.GetWeekly)
		router.PATCH("/users/:user_id/routines/weekly", h.PatchWeekly)
		router.POST("/users/:user_id/routines/weekly/rebalance", h.Rebalance)
		router.POST("/users/:user_id/routines/weekly/check-ins", h.RecordCheckin)
	})

	Describe("GetMonthly", func() {
		It("returns 200 with the routine", func() {
			req := httptest.NewRequest(http.MethodGet, "/users/42/routines/monthly", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["period_key"]).To(Equal("2025-08"))
		})

		It("returns 404 for an unknown user", func() {
			svc.monthlyForFn = func(_ context.Context, _ int64, _ time.Time) (*model.MonthlyRoutine, error) {
				return nil, service.ErrUserNotFound
			}

			req := httptest.NewRequest(http.MethodGet, "/users/42/routines/monthly", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GetWeekly", func() {
		It("returns 200 with date-only week bounds", func() {
			req := httptest.NewRequest(http.MethodGet, "/users/42/routines/weekly", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["week_start"]).To(Equal("2025-08-11"))
			Expect(resp["week_end"]).To(Equal("2025-08-17"))
		})
	})

	Describe("PatchWeekly", func() {
		It("passes the patch through to the service", func() {
			var captured service.WeeklyPatchParams
			svc.updateWeeklyFn = func(_ context.Context, _ int64, patch service.WeeklyPatchParams, _ time.Time) (*service.WeeklyRoutineResult, error) {
				captured = patch
				return weeklyFixture(42), nil
			}

			body, _ := json.Marshal(map[string]any{
				"recommended_days": []string{"tue", "thu"},
				"intensity":        string(engine.IntensityGentle),
			})
			req := httptest.NewRequest(http.MethodPatch, "/users/42/routines/weekly", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(captured.RecommendedDays).To(Equal([]string{"tue", "thu"}))
			Expect(captured.Intensity).NotTo(BeNil())
		})

		It("returns 400 on an unknown intensity", func() {
			called := false
			svc.updateWeeklyFn = func(_ context.Context, _ int64, _ service.WeeklyPatchParams, _ time.Time) (*service.WeeklyRoutineResult, error) {
				called = true
				return weeklyFixture(42), nil
			}

			body, _ := json.Marshal(map[string]any{"intensity": "extreme"})
			req := httptest.NewRequest(http.MethodPatch, "/users/42/routines/weekly", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(called).To(BeFalse())
		})
	})

	Describe("Rebalance", func() {
		It("returns 200 with the rotated routine", func() {
			req := httptest.NewRequest(http.MethodPost, "/users/42/routines/weekly/rebalance", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("RecordCheckin", func() {
		It("returns 201 and defaults the check-in time when the body is empty", func() {
			var captured time.Time
			svc.recordCheckinFn = func(_ context.Context, _ int64, at time.Time) (*service.WeeklyRoutineResult, error) {
				captured = at
				return weeklyFixture(42), nil
			}

			req := httptest.NewRequest(http.MethodPost, "/users/42/routines/weekly/check-ins", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(captured).To(BeTemporally("~", time.Now(), time.Minute))
		})

		It("uses the supplied check-in time", func() {
			at := time.Date(2025, 8, 13, 9, 0, 0, 0, time.UTC)
			var captured time.Time
			svc.recordCheckinFn = func(_ context.Context, _ int64, got time.Time) (*service.WeeklyRoutineResult, error) {
				captured = got
				return weeklyFixture(42), nil
			}

			body, _ := json.Marshal(map[string]any{"checked_at": at})
			req := httptest.NewRequest(http.MethodPost, "/users/42/routines/weekly/check-ins", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(captured).To(BeTemporally("==", at))
		})
	})
})
