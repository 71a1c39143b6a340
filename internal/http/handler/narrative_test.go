package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"skintel.app/core/internal/http/handler"
	"skintel.app/core/internal/model"
	"skintel.app/core/internal/service"
)

var _ = Describe("NarrativeHandler", func() {
	var (
		router *gin.Engine
		svc    *mockNarrativeService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockNarrativeService{}
		h := handler.NewNarrativeHandler(svc)
		router.POST("/narratives", h.Receive)
	})

	It("returns 202 with the stored envelope", func() {
		svc.receiveFn = func(_ context.Context, params service.NarrativeEnvelopeParams) (*model.NarrativeEnvelope, error) {
			Expect(params.UserID).To(Equal(int64(42)))
			Expect(params.PeriodKey).To(Equal("2025-08-11"))
			return &model.NarrativeEnvelope{
				ID: 900, UserID: params.UserID, PeriodKey: params.PeriodKey,
				Payload: params.Payload,
				Status:  string(model.NarrativeEnvelopeStatusReceived),
			}, nil
		}

		body, _ := json.Marshal(map[string]any{
			"user_id":    "42",
			"period_key": "2025-08-11",
			"payload":    map[string]string{"focus": "장벽 집중 케어"},
		})
		req := httptest.NewRequest(http.MethodPost, "/narratives", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusAccepted))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["status"]).To(Equal("received"))
	})

	It("returns 400 when the payload is missing", func() {
		body, _ := json.Marshal(map[string]any{
			"user_id":    "42",
			"period_key": "2025-08-11",
		})
		req := httptest.NewRequest(http.MethodPost, "/narratives", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 400 when the envelope carries nothing to apply", func() {
		svc.receiveFn = func(_ context.Context, _ service.NarrativeEnvelopeParams) (*model.NarrativeEnvelope, error) {
			return nil, service.ErrInvalidEnvelope
		}

		body, _ := json.Marshal(map[string]any{
			"user_id":    "42",
			"period_key": "2025-08-11",
			"payload":    map[string]string{},
		})
		req := httptest.NewRequest(http.MethodPost, "/narratives", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for an unknown user", func() {
		svc.receiveFn = func(_ context.Context, _ service.NarrativeEnvelopeParams) (*model.NarrativeEnvelope, error) {
			return nil, service.ErrUserNotFound
		}

		body, _ := json.Marshal(map[string]any{
			"user_id":    "42",
			"period_key": "2025-08-11",
			"payload":    map[string]string{"focus": "보습"},
		})
		req := httptest.NewRequest(http.MethodPost, "/narratives", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
